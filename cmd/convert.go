// =============================================================================
// XML Table Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, the non-interactive counterpart of
// 'run'. It converts one or more XML files in a single invocation.
//
// COMMAND USAGE:
//   xmltable convert <file>... [flags]
//
// FLAGS:
//   --sort         : Column to sort by
//   --desc         : Sort in descending order
//   --columns      : Comma-separated export columns, or "all"
//   --format       : Export format, json or xlsx
//   --output-dir   : Directory the exports are written to
//   --name-format  : Output file name format ({name}, {date}, ...)
//   --dry-run      : Load and sort without writing output files
//   --preview      : Print the first page of each table
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. For each file (concurrently): load, sort, select columns, export
//   3. Print previews and a summary
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ginjaninja78/xmltable/internal/config"
	"github.com/ginjaninja78/xmltable/internal/converter"
	"github.com/ginjaninja78/xmltable/internal/export"
	"github.com/ginjaninja78/xmltable/internal/preview"
	"github.com/ginjaninja78/xmltable/internal/validation"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	sortColumn    string
	descending    bool
	exportColumns string
	formatName    string
	outputDir     string
	nameFormat    string
	dryRun        bool
	showPreview   bool
)

// =============================================================================
// CONVERT COMMAND DEFINITION
// =============================================================================

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert <file>...",
	Short: "Convert XML files to JSON or XLSX tables",
	Long: `The convert command flattens each XML file into a table, optionally sorts
it, and exports the selected columns.

Files are processed concurrently. An error in one file does not stop the
others; the command fails if any file failed.

Unknown sort or export columns are reported as warnings: the sort is skipped
and unknown export columns are dropped (all columns are exported when none
remain).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runConvert(cmd.OutOrStdout(), cfg, newLogger(cmd, cfg), args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.StringVar(&sortColumn, "sort", "", "Column to sort by")
	flags.BoolVar(&descending, "desc", false, "Sort in descending order")
	flags.StringVar(&exportColumns, "columns", "", "Comma-separated columns to export, or \"all\"")
	flags.StringVar(&formatName, "format", "", "Export format: json or xlsx (default from config)")
	flags.StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	flags.StringVar(&nameFormat, "name-format", "", "Output file name format (default from config)")
	flags.BoolVar(&dryRun, "dry-run", false, "Load and sort without writing output files")
	flags.BoolVar(&showPreview, "preview", false, "Print the first page of each table")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runConvert converts every input file and prints a summary to out.
func runConvert(out io.Writer, cfg *config.Config, logger converter.Logger, inputFiles []string) error {
	startTime := time.Now()

	options, err := convertOptions(cfg)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 1: PROCESS FILES CONCURRENTLY
	// =========================================================================

	var wg sync.WaitGroup
	results := make([]converter.Result, len(inputFiles))

	for i, file := range inputFiles {
		wg.Add(1)
		go func(i int, filePath string) {
			defer wg.Done()
			results[i] = converter.New(filePath, options, logger).Run()
		}(i, file)
	}
	wg.Wait()

	// =========================================================================
	// STEP 2: REPORT
	// =========================================================================

	var successCount, errorCount int
	printer := preview.NewPrinter(out, cfg.MaxCellWidth)

	for _, result := range results {
		name := filepath.Base(result.InputFile)
		switch {
		case !result.Success:
			errorCount++
			fmt.Fprintf(out, "  ✗ %s: %v\n", name, result.Error)
			continue
		case result.Empty:
			successCount++
			fmt.Fprintf(out, "  - %s: no data under the root element\n", name)
			continue
		case result.OutputFile == "":
			successCount++
			fmt.Fprintf(out, "  ✓ %s (%d rows, dry run)\n", name, result.Stats.Rows)
		default:
			successCount++
			fmt.Fprintf(out, "  ✓ %s -> %s (%d rows)\n", name, result.OutputFile, result.Stats.Rows)
		}

		if len(result.Warnings) > 0 {
			fmt.Fprint(out, indent(validation.FormatErrors(result.Warnings), "    "))
		}
		if showPreview {
			if err := printer.Print(result.Table.Page(0, cfg.PageSize), result.ExportColumns); err != nil {
				return err
			}
		}
	}

	// =========================================================================
	// STEP 3: PRINT SUMMARY
	// =========================================================================

	fmt.Fprintln(out, "\n=== Conversion Complete ===")
	fmt.Fprintf(out, "Total files:     %d\n", len(inputFiles))
	fmt.Fprintf(out, "Successful:      %d\n", successCount)
	fmt.Fprintf(out, "Errors:          %d\n", errorCount)
	fmt.Fprintf(out, "Time elapsed:    %s\n", time.Since(startTime).Round(time.Millisecond))

	if errorCount > 0 {
		return fmt.Errorf("%d of %d file(s) failed", errorCount, len(inputFiles))
	}
	return nil
}

// indent prefixes every line of text with prefix.
func indent(text, prefix string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line != "" {
			b.WriteString(prefix + line)
		}
	}
	return b.String()
}

// convertOptions merges the command flags over the configuration.
func convertOptions(cfg *config.Config) (converter.Options, error) {
	name := formatName
	if strings.TrimSpace(name) == "" {
		name = cfg.ExportFormat
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return converter.Options{}, err
	}

	dir := cfg.ResolvedOutputDir()
	if outputDir != "" {
		dir = config.ExpandHome(outputDir)
	}

	names := cfg.OutputNameFormat
	if nameFormat != "" {
		names = nameFormat
	}

	return converter.Options{
		SortColumn:    sortColumn,
		Descending:    descending,
		ExportColumns: exportColumns,
		Format:        format,
		OutputDir:     dir,
		NameFormat:    names,
		DryRun:        dryRun,
	}, nil
}

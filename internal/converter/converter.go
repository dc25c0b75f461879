// =============================================================================
// XML Table Converter - Converter Module
// =============================================================================
//
// This module runs the non-interactive conversion pipeline for one file.
//
// CONVERSION PIPELINE:
//   1. Load the XML document and flatten it into a table
//   2. Stop (successfully) when the root has no items
//   3. Sort the table when a sort column is given
//   4. Resolve the export column selection
//   5. Write the export file
//
// SOFT FAILURES:
//   An unknown sort column skips the sort; an unknown export column is
//   dropped. Both are logged as warnings and reported in the Result, and
//   neither fails the run.
//
// =============================================================================

package converter

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/xmltable/internal/export"
	"github.com/ginjaninja78/xmltable/internal/table"
	"github.com/ginjaninja78/xmltable/internal/validation"
	"github.com/ginjaninja78/xmltable/internal/xmlparser"
	"github.com/ginjaninja78/xmltable/pkg/utils"
)

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options controls a conversion.
type Options struct {
	// SortColumn is the column to sort by. Empty means no sort.
	SortColumn string

	// Descending reverses the sort order.
	Descending bool

	// ExportColumns is the comma-separated export selection; "" or "all"
	// exports every column.
	ExportColumns string

	// Format is the export format.
	Format export.Format

	// OutputDir is the directory the export is written to.
	OutputDir string

	// NameFormat is the output file name format (see utils.OutputFileName).
	NameFormat string

	// DryRun loads and sorts but writes nothing.
	DryRun bool
}

// Result represents the outcome of converting a single file.
type Result struct {
	// InputFile is the path to the XML file that was processed.
	InputFile string

	// OutputFile is the path to the written export.
	// Empty when nothing was written.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Empty is true when the document root had no items.
	Empty bool

	// Error contains the error if the run failed.
	Error error

	// Warnings lists the soft column selection failures.
	Warnings []*validation.SelectionError

	// Table is the loaded (and possibly sorted) table.
	Table *table.Table

	// ExportColumns is the resolved export selection.
	ExportColumns []string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// Rows is the number of items flattened.
	Rows int

	// Columns is the number of discovered columns.
	Columns int

	// Sorted indicates whether a sort was applied.
	Sorted bool

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter handles the conversion of a single XML file.
type Converter struct {
	inputPath string
	options   Options
	logger    Logger
}

// New creates a new Converter instance.
//
// PARAMETERS:
//   - inputPath: The path to the XML input file.
//   - options: The conversion options.
//   - logger: Where progress is logged.
func New(inputPath string, options Options, logger Logger) *Converter {
	if options.Format == "" {
		options.Format = export.FormatJSON
	}
	return &Converter{
		inputPath: inputPath,
		options:   options,
		logger:    logger,
	}
}

// Run executes the conversion pipeline.
func (c *Converter) Run() (result Result) {
	startTime := time.Now()
	result = Result{InputFile: c.inputPath}
	defer func() {
		result.Stats.ProcessingTime = time.Since(startTime)
	}()

	// =========================================================================
	// STEP 1: LOAD
	// =========================================================================

	c.logger.Info("Loading %s", c.inputPath)
	tbl, err := xmlparser.Load(c.inputPath)
	if err != nil {
		result.Error = err
		return result
	}
	result.Table = tbl
	result.Stats.Rows = tbl.Len()
	result.Stats.Columns = tbl.Columns().Len()
	c.logger.Debug("Flattened %d item(s) into %d column(s)", tbl.Len(), tbl.Columns().Len())

	// =========================================================================
	// STEP 2: EMPTY DOCUMENT
	// =========================================================================

	if tbl.Empty() {
		c.logger.Warn("No items found under the document root")
		result.Empty = true
		result.Success = true
		return result
	}

	// =========================================================================
	// STEP 3: SORT
	// =========================================================================

	if c.options.SortColumn != "" {
		sorted, warning := c.Sort(tbl)
		if warning != nil {
			result.Warnings = append(result.Warnings, warning)
		} else {
			result.Stats.Sorted = true
		}
		tbl = sorted
		result.Table = tbl
	}

	// =========================================================================
	// STEP 4: EXPORT COLUMNS
	// =========================================================================

	sel := validation.ResolveColumns(c.options.ExportColumns, tbl.Columns(), validation.PurposeExport, tbl.Columns().Names())
	for _, w := range sel.Errors {
		c.logger.Warn("%s", w.Error())
	}
	if sel.UsedFallback {
		c.logger.Warn("No valid export column selected, exporting all columns")
	}
	result.Warnings = append(result.Warnings, sel.Errors...)
	result.ExportColumns = sel.Columns

	// =========================================================================
	// STEP 5: WRITE
	// =========================================================================

	if c.options.DryRun {
		c.logger.Info("Dry run: nothing written")
		result.Success = true
		return result
	}

	outputPath, err := c.Export(tbl, sel.Columns)
	if err != nil {
		result.Error = err
		return result
	}
	result.OutputFile = outputPath
	result.Success = true
	c.logger.Info("Wrote %s", outputPath)

	return result
}

// Sort sorts tbl by the configured column. An unknown column leaves tbl
// unchanged and returns a warning.
func (c *Converter) Sort(tbl *table.Table) (*table.Table, *validation.SelectionError) {
	column, warning := validation.ValidateSortColumn(c.options.SortColumn, tbl.Columns())
	if warning != nil {
		c.logger.Warn("%s, sort skipped", warning.Error())
		return tbl, warning
	}

	order := "ascending"
	if c.options.Descending {
		order = "descending"
	}
	c.logger.Debug("Sorting by %s (%s)", column, order)
	return tbl.Sort(column, c.options.Descending), nil
}

// OutputPath returns where the export for this input goes.
func (c *Converter) OutputPath() string {
	name := utils.OutputFileName(c.options.NameFormat, c.inputPath, c.options.Format.Extension())
	return filepath.Join(c.options.OutputDir, name)
}

// Export writes columns of tbl to OutputPath.
func (c *Converter) Export(tbl *table.Table, columns []string) (string, error) {
	path := c.OutputPath()
	if err := export.ExportFile(path, c.options.Format, tbl.Rows(), columns); err != nil {
		return "", fmt.Errorf("failed to export: %w", err)
	}
	return path, nil
}

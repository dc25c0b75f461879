// =============================================================================
// XML Table Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every other command
// (like 'run', 'convert') is attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xmltable)
//   ├── runCmd (xmltable run)
//   ├── convertCmd (xmltable convert)
//   ├── columnsCmd (xmltable columns)
//   └── versionCmd (xmltable version)
//
// CONFIGURATION:
//   The root command owns the global flags (--config, --verbose) and the
//   helpers that turn them into a Config and a Logger for the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/xmltable/internal/config"
	"github.com/ginjaninja78/xmltable/internal/converter"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xmltable",
	Short: "XML Table Converter - Browse, sort and export XML data as a table",
	Long: `XML Table Converter loads an XML document, flattens every element under
the root into a table row, and lets you sort, preview and export the result.

Nested elements become dotted column names (address.city), attributes are
prefixed with "@" (@id), and repeated elements are merged with " | ".

Example Usage:
  xmltable run books.xml                        # Interactive session
  xmltable convert books.xml --sort price --desc
  xmltable convert *.xml --format xlsx --output-dir ./out
  xmltable columns books.xml                    # List discovered columns`,

	SilenceUsage: true,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================

	// --config flag: The default file may be missing; an explicit one may not.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig reads the configuration named by --config. The file is only
// required when the flag was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	required := cmd.Flags().Changed("config")
	cfg, err := config.Load(cfgFile, required)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to the command's error stream.
// --verbose overrides the configured level.
func newLogger(cmd *cobra.Command, cfg *config.Config) converter.Logger {
	level := converter.ParseLevel(cfg.LogLevel)
	if verbose {
		level = converter.LevelDebug
	}
	return converter.NewLogger(cmd.ErrOrStderr(), level)
}

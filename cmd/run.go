// =============================================================================
// XML Table Converter - Run Command
// =============================================================================
//
// COMMAND USAGE:
//   xmltable run [file]
//
// Starts the interactive session. When stdin is a terminal, preview pages are
// turned with single key presses; otherwise each key is read as a line.
//
// =============================================================================

package cmd

import (
	"os"

	"github.com/ginjaninja78/xmltable/internal/preview"
	"github.com/ginjaninja78/xmltable/internal/session"
	"github.com/spf13/cobra"
)

// runCmd represents the 'run' command.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Interactively sort, preview and export an XML file",
	Long: `The run command asks for an XML file (unless one is given), shows the
discovered columns, then walks through sorting, a paged preview and an
optional export.

Preview keys: n = next page, p = previous page, q = quit preview.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		s := session.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), newLogger(cmd, cfg))
		if cmd.InOrStdin() == os.Stdin {
			if keys, ok := preview.NewTerminalKeyReader(os.Stdin); ok {
				s.SetKeyReader(keys)
			}
		}

		_, err = s.Run(path)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

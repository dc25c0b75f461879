// =============================================================================
// XML Table Converter - Columns Command
// =============================================================================
//
// COMMAND USAGE:
//   xmltable columns <file>
//
// OUTPUT:
//   3 row(s), 4 column(s)
//   @id
//   title
//   ...
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/xmltable/internal/xmlparser"
	"github.com/spf13/cobra"
)

// columnsCmd represents the 'columns' command.
var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "List the columns discovered in an XML file",
	Long: `The columns command flattens the XML file and prints the row count followed
by every discovered column, one per line, in first-seen order. These are the
names accepted by --sort and --columns.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := xmlparser.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d row(s), %d column(s)\n", tbl.Len(), tbl.Columns().Len())
		for _, name := range tbl.Columns().Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

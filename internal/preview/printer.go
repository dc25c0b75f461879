// Package preview renders table rows as a bounded-width text table and pages
// through them.
package preview

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/xmltable/internal/table"
	"github.com/mattn/go-runewidth"
)

// DefaultMaxCellWidth is the widest a column may get before cells are cut.
const DefaultMaxCellWidth = 30

// EmptyMessage is printed instead of a table when there are no rows.
const EmptyMessage = "(no rows)"

// Printer writes rows as a pipe-delimited text table.
type Printer struct {
	// Out receives the table.
	Out io.Writer

	// MaxCellWidth caps every column's width. Zero means DefaultMaxCellWidth.
	MaxCellWidth int
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer, maxCellWidth int) *Printer {
	return &Printer{Out: out, MaxCellWidth: maxCellWidth}
}

// Print writes rows restricted to columns. Column names are matched
// case-insensitively against row keys.
//
// Column width = min(MaxCellWidth, max(header width, widest cell)).
// Line breaks inside a cell become spaces, then the cell is cut to the
// column width. A header longer than the cap is printed in full.
func (p *Printer) Print(rows []table.Row, columns []string) error {
	w := bufio.NewWriter(p.Out)

	if len(rows) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return w.Flush()
	}

	limit := p.MaxCellWidth
	if limit <= 0 {
		limit = DefaultMaxCellWidth
	}
	widths := columnWidths(rows, columns, limit)

	for i, c := range columns {
		fmt.Fprintf(w, "| %s ", runewidth.FillRight(c, widths[i]))
	}
	fmt.Fprintln(w, "|")
	for i := range columns {
		fmt.Fprintf(w, "|-%s-", strings.Repeat("-", widths[i]))
	}
	fmt.Fprintln(w, "|")

	for _, row := range rows {
		for i, c := range columns {
			v, _ := row.Get(c)
			fmt.Fprintf(w, "| %s ", runewidth.FillRight(cell(v, widths[i]), widths[i]))
		}
		fmt.Fprintln(w, "|")
	}

	return w.Flush()
}

// columnWidths computes the display width of each column.
func columnWidths(rows []table.Row, columns []string, limit int) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widest := runewidth.StringWidth(c)
		for _, row := range rows {
			v, _ := row.Get(c)
			if n := runewidth.StringWidth(flatten(v)); n > widest {
				widest = n
			}
		}
		widths[i] = min(limit, widest)
	}
	return widths
}

// lineBreaks turns line breaks into spaces.
var lineBreaks = strings.NewReplacer("\r", " ", "\n", " ")

func flatten(v string) string {
	return lineBreaks.Replace(v)
}

// cell flattens line breaks and cuts v to width.
func cell(v string, width int) string {
	v = flatten(v)
	if runewidth.StringWidth(v) > width {
		v = runewidth.Truncate(v, width, "")
	}
	return v
}

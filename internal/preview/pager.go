package preview

import (
	"errors"
	"fmt"
	"io"

	"github.com/ginjaninja78/xmltable/internal/table"
)

// DefaultPageSize is the number of rows shown per page.
const DefaultPageSize = 10

// Pager tracks the current page over TotalCount rows.
type Pager struct {
	PageSize   int
	TotalCount int
	PageIndex  int
}

// NewPager returns a Pager positioned on the first page.
func NewPager(pageSize, totalCount int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{PageSize: pageSize, TotalCount: totalCount}
}

// TotalPages is never less than one, even with no rows.
func (p *Pager) TotalPages() int {
	pages := (p.TotalCount + p.PageSize - 1) / p.PageSize
	return max(1, pages)
}

// HasMoreThanOnePage reports whether paging keys are meaningful.
func (p *Pager) HasMoreThanOnePage() bool {
	return p.TotalPages() > 1
}

// Next moves forward one page, stopping at the last page.
func (p *Pager) Next() {
	p.PageIndex = min(p.PageIndex+1, p.TotalPages()-1)
}

// Previous moves back one page, stopping at the first page.
func (p *Pager) Previous() {
	p.PageIndex = max(p.PageIndex-1, 0)
}

// Offset is the index of the first row of the current page.
func (p *Pager) Offset() int {
	return p.PageIndex * p.PageSize
}

// Bounds returns the half-open row range [start, end) of the current page.
func (p *Pager) Bounds() (start, end int) {
	start = min(p.Offset(), p.TotalCount)
	end = min(start+p.PageSize, p.TotalCount)
	return start, end
}

// Browse shows tbl one page at a time on out, restricted to columns.
// Keys: n next, p previous, q quit (case-insensitive). Other keys redraw the
// current page. Browse returns after the first page when everything fits on
// it, and when keys are exhausted.
func Browse(out io.Writer, printer *Printer, tbl *table.Table, columns []string, pageSize int, keys KeyReader) error {
	pager := NewPager(pageSize, tbl.Len())
	for {
		fmt.Fprintf(out, "\nPreview page %d/%d\n", pager.PageIndex+1, pager.TotalPages())
		start, end := pager.Bounds()
		if err := printer.Print(tbl.Page(start, end-start), columns); err != nil {
			return fmt.Errorf("failed to print page: %w", err)
		}
		if !pager.HasMoreThanOnePage() {
			return nil
		}

		fmt.Fprintln(out, "n=next, p=previous, q=quit preview")
		k, err := keys.ReadKey()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}

		switch k {
		case 'q', 'Q':
			return nil
		case 'n', 'N':
			pager.Next()
		case 'p', 'P':
			pager.Previous()
		}
	}
}

// =============================================================================
// XML Table Converter - Table Model
// =============================================================================
//
// A Table owns an ordered sequence of Rows and the Columns derived from them.
//
// INVARIANT:
//   Columns is always exactly the union of keys across the current rows,
//   compared case-insensitively. It is recomputed by New, and every operation
//   that changes the rows (Sort) goes through New.
//
// COLUMN ORDER:
//   Columns are listed in first-seen order: rows in table order, keys in the
//   order they were produced for that row. The first-seen casing is displayed.
//
// =============================================================================

package table

import "strings"

// =============================================================================
// COLUMNS
// =============================================================================

// Columns is an ordered, case-insensitive set of column names.
type Columns struct {
	names []string
	index map[string]int
}

// newColumns computes the union of keys over rows.
func newColumns(rows []Row) Columns {
	cols := Columns{index: make(map[string]int)}
	for _, row := range rows {
		for _, c := range row.order {
			if _, seen := cols.index[c]; seen {
				continue
			}
			cols.index[c] = len(cols.names)
			cols.names = append(cols.names, row.display[c])
		}
	}
	return cols
}

// Names returns the column names in display order.
func (c Columns) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of columns.
func (c Columns) Len() int {
	return len(c.names)
}

// Contains reports whether name is a column, ignoring case.
func (c Columns) Contains(name string) bool {
	_, ok := c.index[canonical(name)]
	return ok
}

// Lookup returns the display casing of name, ignoring case.
func (c Columns) Lookup(name string) (string, bool) {
	i, ok := c.index[canonical(name)]
	if !ok {
		return "", false
	}
	return c.names[i], true
}

// First returns at most n column names in display order.
func (c Columns) First(n int) []string {
	if n > len(c.names) {
		n = len(c.names)
	}
	if n < 0 {
		n = 0
	}
	return c.Names()[:n]
}

// String joins the column names with ", ".
func (c Columns) String() string {
	return strings.Join(c.names, ", ")
}

// =============================================================================
// TABLE
// =============================================================================

// Table is an immutable set of rows with their discovered columns.
type Table struct {
	rows    []Row
	columns Columns
}

// New creates a Table from rows and computes its columns.
// The slice is copied; later changes to rows do not affect the Table.
func New(rows []Row) *Table {
	owned := make([]Row, len(rows))
	copy(owned, rows)
	return &Table{
		rows:    owned,
		columns: newColumns(owned),
	}
}

// Rows returns the rows in table order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Columns returns the discovered columns.
func (t *Table) Columns() Columns {
	return t.columns
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows. An empty table is a valid
// result (the document root had no items); callers decide whether to stop.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// Page returns up to limit rows starting at offset.
func (t *Table) Page(offset, limit int) []Row {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(t.rows) || limit <= 0 {
		return nil
	}
	end := offset + limit
	if end > len(t.rows) {
		end = len(t.rows)
	}
	out := make([]Row, end-offset)
	copy(out, t.rows[offset:end])
	return out
}

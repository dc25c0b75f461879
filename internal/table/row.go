// =============================================================================
// XML Table Converter - Row Model
// =============================================================================
//
// A Row is the flattened form of one XML item. Keys are dotted key paths
// (e.g. "parent.child.@attr") and are compared case-insensitively: the row
// stores a lowercase canonical form next to the casing that was seen first.
//
// Rows are immutable once built. Use a RowBuilder while flattening, then call
// Build to obtain the Row.
//
// =============================================================================

package table

import "strings"

// MergeSeparator joins values produced more than once for the same key
// within a single item.
const MergeSeparator = " | "

// =============================================================================
// ROW
// =============================================================================

// Row maps column keys to string values.
// A key that is absent has no value (the JSON export renders it as null).
type Row struct {
	// order holds the canonical keys in first-seen order.
	order []string

	// display maps a canonical key to the casing seen first.
	display map[string]string

	// values maps a canonical key to its (possibly merged) value.
	values map[string]string
}

// canonical returns the normalized form used for case-insensitive lookups.
func canonical(key string) string {
	return strings.ToLower(key)
}

// Get returns the value stored under key, compared case-insensitively.
func (r Row) Get(key string) (string, bool) {
	v, ok := r.values[canonical(key)]
	return v, ok
}

// Has reports whether the row has a value for key.
func (r Row) Has(key string) bool {
	_, ok := r.values[canonical(key)]
	return ok
}

// Keys returns the row's keys in first-seen order, using first-seen casing.
func (r Row) Keys() []string {
	keys := make([]string, len(r.order))
	for i, c := range r.order {
		keys[i] = r.display[c]
	}
	return keys
}

// Len returns the number of keys in the row.
func (r Row) Len() int {
	return len(r.order)
}

// Map returns a copy of the row as a plain map keyed by display casing.
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.order))
	for _, c := range r.order {
		m[r.display[c]] = r.values[c]
	}
	return m
}

// =============================================================================
// ROW BUILDER
// =============================================================================

// RowBuilder accumulates key/value pairs for a single Row.
// The zero value is ready to use.
type RowBuilder struct {
	row Row
}

// NewRowBuilder returns an empty RowBuilder.
func NewRowBuilder() *RowBuilder {
	return &RowBuilder{}
}

// Append records value under key using the merge policy:
//   - an empty or whitespace-only value is never recorded and never
//     overwrites anything; other values are stored as given;
//   - a second value for the same key is appended after MergeSeparator,
//     preserving encounter order.
func (b *RowBuilder) Append(key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if b.row.values == nil {
		b.row.values = make(map[string]string)
		b.row.display = make(map[string]string)
	}

	c := canonical(key)
	existing, ok := b.row.values[c]
	if !ok {
		b.row.order = append(b.row.order, c)
		b.row.display[c] = key
		b.row.values[c] = value
		return
	}
	b.row.values[c] = existing + MergeSeparator + value
}

// Build returns the accumulated Row. The builder must not be used afterwards.
func (b *RowBuilder) Build() Row {
	row := b.row
	b.row = Row{}
	return row
}

// RowFromPairs builds a Row from alternating key, value arguments.
// It applies the same merge policy as RowBuilder.Append.
func RowFromPairs(kv ...string) Row {
	b := NewRowBuilder()
	for i := 0; i+1 < len(kv); i += 2 {
		b.Append(kv[i], kv[i+1])
	}
	return b.Build()
}

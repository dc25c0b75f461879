// =============================================================================
// XML Table Converter - Sorter
// =============================================================================
//
// Sort orders rows by one column using a composite key (rank, number, text):
//
//   rank 0 - the value parses as a number; number holds the parsed value
//   rank 1 - the value is text; text holds the raw value
//   rank 2 - the row has no value for the column
//
// Keys compare lexicographically: rank, then number, then text. The requested
// direction applies to the whole comparison, so missing values come last in
// ascending order and first in descending order.
//
// The sort is stable and returns a new Table; the receiver is left untouched.
//
// =============================================================================

package table

import (
	"cmp"
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Rank classifies a sort value.
type Rank int

const (
	// RankNumber is used for values that parse as a number.
	RankNumber Rank = iota

	// RankText is used for values that do not parse as a number.
	RankText

	// RankMissing is used for rows without a value.
	RankMissing
)

// SortKey is the composite key derived from one row.
type SortKey struct {
	Rank   Rank
	Number float64
	Text   string
}

// numberPattern accepts culture-invariant decimal numbers: optional sign,
// digits with an optional fraction, optional exponent.
var numberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// ParseNumber parses s as a culture-invariant number after replacing ','
// with '.', so "3,5" and "3.5" both yield 3.5. Values too large for a
// float64 parse as ±Inf.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if !numberPattern.MatchString(s) {
		return 0, false
	}
	// Out-of-range magnitudes come back as ±Inf with ErrRange and still rank
	// as numbers.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// ParseSortKey derives the composite key of row for column.
func ParseSortKey(row Row, column string) SortKey {
	v, ok := row.Get(column)
	if !ok {
		return SortKey{Rank: RankMissing}
	}
	if f, ok := ParseNumber(v); ok {
		return SortKey{Rank: RankNumber, Number: f}
	}
	return SortKey{Rank: RankText, Text: v}
}

// keyComparer compares SortKeys. Text is ordered with the root-locale
// collator. A collator is not safe for concurrent use, so each Sort call
// owns one.
type keyComparer struct {
	collator *collate.Collator
}

func newKeyComparer() *keyComparer {
	return &keyComparer{collator: collate.New(language.Und)}
}

// compare returns -1, 0 or +1 comparing a and b in ascending order.
func (k *keyComparer) compare(a, b SortKey) int {
	if a.Rank != b.Rank {
		return cmp.Compare(a.Rank, b.Rank)
	}
	switch a.Rank {
	case RankNumber:
		return cmp.Compare(a.Number, b.Number)
	case RankText:
		return k.collator.CompareString(a.Text, b.Text)
	default:
		return 0
	}
}

// Sort returns a new Table with rows ordered by column.
// The column name is matched case-insensitively. Rows with equal keys keep
// their relative order.
func (t *Table) Sort(column string, descending bool) *Table {
	type keyed struct {
		row Row
		key SortKey
	}

	items := make([]keyed, len(t.rows))
	for i, row := range t.rows {
		items[i] = keyed{row: row, key: ParseSortKey(row, column)}
	}

	comparer := newKeyComparer()
	slices.SortStableFunc(items, func(a, b keyed) int {
		c := comparer.compare(a.key, b.key)
		if descending {
			return -c
		}
		return c
	})

	rows := make([]Row, len(items))
	for i, item := range items {
		rows[i] = item.row
	}
	return New(rows)
}

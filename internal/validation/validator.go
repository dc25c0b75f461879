// =============================================================================
// XML Table Converter - Validation Module
// =============================================================================
//
// This module validates user column selections against the columns
// discovered in the table.
//
// SELECTION RULES:
//   - empty input or "all" (any case) selects every column
//   - otherwise the input is split on ",", entries are trimmed, empty
//     entries dropped
//   - names are matched case-insensitively and replaced by the casing the
//     table displays; duplicates are dropped
//   - unknown names are reported as warnings, never as fatal errors
//   - when nothing valid remains the caller-supplied fallback is used
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/xmltable/internal/table"
)

// SeverityWarning marks a selection that degrades gracefully.
const SeverityWarning = "warning"

// Purposes a selection is made for. They only appear in messages.
const (
	PurposeSort    = "sort"
	PurposePreview = "preview"
	PurposeExport  = "export"
)

// AllKeyword selects every column.
const AllKeyword = "all"

// =============================================================================
// SELECTION ERROR
// =============================================================================

// SelectionError reports a requested column that is not in the table.
type SelectionError struct {
	// Severity is SeverityWarning for selections that degrade gracefully.
	Severity string

	// Purpose is what the column was requested for (sort, preview, export).
	Purpose string

	// Column is the name as the user typed it.
	Column string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *SelectionError) Error() string {
	return fmt.Sprintf("[%s] %s column '%s': %s",
		strings.ToUpper(e.Severity),
		e.Purpose,
		e.Column,
		e.Message,
	)
}

func unknownColumn(purpose, column string) *SelectionError {
	return &SelectionError{
		Severity: SeverityWarning,
		Purpose:  purpose,
		Column:   column,
		Message:  "not a discovered column",
	}
}

// =============================================================================
// SELECTION
// =============================================================================

// Selection is the outcome of resolving a column list.
type Selection struct {
	// Columns is the resolved, de-duplicated list in display casing.
	Columns []string

	// Errors lists the requested names that were dropped.
	Errors []*SelectionError

	// UsedFallback is true when nothing valid was requested.
	UsedFallback bool
}

// ResolveColumns resolves a comma-separated column list against cols.
//
// PARAMETERS:
//   - input: What the user typed, e.g. "name, @id" or "all".
//   - cols: The table's columns.
//   - purpose: PurposePreview or PurposeExport, used in messages.
//   - fallback: Returned when the selection resolves to nothing.
//
// RETURNS:
//   - The Selection. It is never fatal.
func ResolveColumns(input string, cols table.Columns, purpose string, fallback []string) Selection {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, AllKeyword) {
		return Selection{Columns: cols.Names()}
	}

	var sel Selection
	seen := make(map[string]bool)
	for _, part := range strings.Split(input, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		canonical, ok := cols.Lookup(name)
		if !ok {
			sel.Errors = append(sel.Errors, unknownColumn(purpose, name))
			continue
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		sel.Columns = append(sel.Columns, canonical)
	}

	if len(sel.Columns) == 0 {
		sel.Columns = append([]string(nil), fallback...)
		sel.UsedFallback = true
	}
	return sel
}

// ValidateSortColumn resolves the sort column name against cols.
// A blank or unknown name returns a warning; the caller skips sorting.
func ValidateSortColumn(name string, cols table.Columns) (string, *SelectionError) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &SelectionError{
			Severity: SeverityWarning,
			Purpose:  PurposeSort,
			Message:  "no column given",
		}
	}
	canonical, ok := cols.Lookup(name)
	if !ok {
		return "", unknownColumn(PurposeSort, name)
	}
	return canonical, nil
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats selection errors for display or logging.
func FormatErrors(errors []*SelectionError) string {
	if len(errors) == 0 {
		return "No selection errors."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Selection completed with %d warning(s):\n", len(errors)))
	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}
	return builder.String()
}

// =============================================================================
// XML Table Converter - XLSX Exporter
// =============================================================================
//
// WriteXLSX writes rows as a single-sheet workbook:
//
//   row 1      : the column names (frozen)
//   row 2..n+1 : one table row each; missing values are left blank
//
// =============================================================================

package export

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/xmltable/internal/table"
	"github.com/xuri/excelize/v2"
)

// DefaultSheetName names the worksheet holding the exported rows.
const DefaultSheetName = "Table"

// WriteXLSX writes rows restricted to columns as an XLSX workbook to w.
func WriteXLSX(w io.Writer, rows []table.Row, columns []string) error {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet.
	if err := f.SetSheetName(f.GetSheetName(0), DefaultSheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(DefaultSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for r, row := range rows {
		for i, c := range columns {
			v, ok := row.Get(c)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to address row %d: %w", r+1, err)
			}
			if err := f.SetCellStr(DefaultSheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", r+1, err)
			}
		}
	}

	if len(columns) > 0 {
		err := f.SetPanes(DefaultSheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
		if err != nil {
			return fmt.Errorf("failed to freeze header row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

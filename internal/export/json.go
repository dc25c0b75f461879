// =============================================================================
// XML Table Converter - JSON Exporter
// =============================================================================
//
// WriteJSON serializes rows as a pretty-printed JSON array:
//
//   [
//     {
//       "@id": "1",
//       "name": "Bea",
//       "city": null
//     }
//   ]
//
// OUTPUT RULES:
//   - every object holds exactly the requested columns, in the given order
//   - a column missing from a row is written as null
//   - no HTML escaping ("<", ">", "&" stay literal), no "\/"
//   - non-ASCII characters are written as UTF-8, not as \uXXXX
//   - no byte-order mark
//
// =============================================================================

package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ginjaninja78/xmltable/internal/table"
)

// JSONIndent is the indentation used for each nesting level.
const JSONIndent = "  "

// record is one exported row. It marshals its fields in column order,
// which a Go map cannot guarantee.
type record struct {
	columns []string
	row     table.Row
}

// MarshalJSON implements json.Marshaler.
func (r record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, c); err != nil {
			return nil, err
		}
		buf.WriteByte(':')

		v, ok := r.row.Get(c)
		if !ok {
			buf.WriteString("null")
			continue
		}
		if err := writeJSONValue(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONValue encodes v without HTML escaping.
func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// WriteJSON writes rows restricted to columns as a JSON array to w.
func WriteJSON(w io.Writer, rows []table.Row, columns []string) error {
	records := make([]record, len(rows))
	for i, row := range rows {
		records[i] = record{columns: columns, row: row}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", JSONIndent)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

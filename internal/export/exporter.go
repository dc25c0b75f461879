package export

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/xmltable/internal/table"
	"github.com/ginjaninja78/xmltable/pkg/utils"
	"github.com/natefinch/atomic"
)

// Format is an export file format.
type Format string

const (
	// FormatJSON writes a pretty-printed JSON array.
	FormatJSON Format = "json"

	// FormatXLSX writes a spreadsheet.
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a user-supplied name into a Format.
// An empty name selects FormatJSON.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected json or xlsx)", name)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// Write encodes rows restricted to columns in format f.
func (f Format) Write(w io.Writer, rows []table.Row, columns []string) error {
	switch f {
	case FormatJSON:
		return WriteJSON(w, rows, columns)
	case FormatXLSX:
		return WriteXLSX(w, rows, columns)
	default:
		return fmt.Errorf("unknown export format %q", string(f))
	}
}

// ExportFile writes rows restricted to columns to path.
//
// The content is encoded in memory first and then written atomically, so a
// failed export never leaves a partial file behind. The parent directory is
// created when missing.
func ExportFile(path string, format Format, rows []table.Row, columns []string) error {
	var buf bytes.Buffer
	if err := format.Write(&buf, rows, columns); err != nil {
		return err
	}

	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

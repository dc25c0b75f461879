// =============================================================================
// XML Table Converter - File Manager Utility
// =============================================================================
//
// This module provides file utilities for the converter:
//   - Output file naming (placeholders, extension handling)
//   - Default output directory resolution (the user's desktop)
//   - Small file-system helpers
//
// NAMING:
//   The default name format "{name}" turns "/data/books.xml" into
//   "books.json". When the input base name cannot be derived the name
//   falls back to "export".
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultNameFormat reproduces "<inputBaseName>.<ext>".
const DefaultNameFormat = "{name}"

// FallbackBaseName is used when no base name can be derived from the input.
const FallbackBaseName = "export"

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// BaseName returns the input file name without directory and extension,
// or FallbackBaseName when that leaves nothing.
func BaseName(inputPath string) string {
	name := filepath.Base(strings.TrimSpace(inputPath))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if strings.TrimSpace(name) == "" || name == "." || name == string(filepath.Separator) {
		return FallbackBaseName
	}
	return name
}

// OutputFileName generates the output file name for inputPath.
//
// PARAMETERS:
//   - format: The name format. Placeholders:
//       {name}      - Input base name (see BaseName)
//       {uuid}      - A random UUID
//       {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//       {date}      - Current date (YYYYMMDD)
//     An empty format means DefaultNameFormat.
//   - inputPath: The path of the XML input file.
//   - ext: The extension to enforce, including the dot (e.g. ".json").
//
// RETURNS:
//   - The generated file name (no directory).
//
// EXAMPLE:
//   format: "{name}_{date}"
//   inputPath: "/data/books.xml", ext: ".json"
//   output: "books_20240115.json"
func OutputFileName(format, inputPath, ext string) string {
	if strings.TrimSpace(format) == "" {
		format = DefaultNameFormat
	}
	now := time.Now()

	replacer := strings.NewReplacer(
		"{name}", BaseName(inputPath),
		"{uuid}", uuid.New().String(),
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
	)
	result := replacer.Replace(format)

	// Ensure the extension.
	if ext != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}

	return result
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// DesktopDir returns the user's desktop directory when it exists, otherwise
// the current working directory.
func DesktopDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		desktop := filepath.Join(home, "Desktop")
		if info, err := os.Stat(desktop); err == nil && info.IsDir() {
			return desktop
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// =============================================================================
// FILE UTILITIES
// =============================================================================

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// =============================================================================
// XML Table Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the XML Table Converter CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   xmltable run [file]      - Interactive sort, preview and export session
//   xmltable convert <file>  - Non-interactive export of one or more files
//   xmltable columns <file>  - List the columns discovered in a file
//   xmltable version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core logic (table model, XML flattening, export, ...)
//   - pkg/           : Shared file name and directory utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/xmltable/cmd"
)

func main() {
	cmd.Execute()
}

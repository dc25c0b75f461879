// =============================================================================
// XML Table Converter - Interactive Session
// =============================================================================
//
// This module drives the interactive console dialogue:
//
//   1. Ask for the XML file (unless one was given)
//   2. Load it and list the discovered columns
//   3. Optionally sort by a column
//   4. Page through a preview of the chosen columns
//   5. Optionally export the chosen columns
//
// Every prompt reads one line. End of input answers the current prompt with
// an empty line, so a piped session always reaches a clean stop.
//
// =============================================================================

package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/xmltable/internal/config"
	"github.com/ginjaninja78/xmltable/internal/converter"
	"github.com/ginjaninja78/xmltable/internal/export"
	"github.com/ginjaninja78/xmltable/internal/preview"
	"github.com/ginjaninja78/xmltable/internal/table"
	"github.com/ginjaninja78/xmltable/internal/validation"
	"github.com/ginjaninja78/xmltable/internal/xmlparser"
	"github.com/ginjaninja78/xmltable/pkg/utils"
)

// Status says how a session ended.
type Status int

const (
	// StatusDone means the dialogue ran to the end.
	StatusDone Status = iota

	// StatusNoInput means no file path was given.
	StatusNoInput

	// StatusFileNotFound means the path did not name a readable file.
	StatusFileNotFound

	// StatusMalformed means the file was not well-formed XML.
	StatusMalformed

	// StatusNoData means the document root had no items.
	StatusNoData
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusNoInput:
		return "no input"
	case StatusFileNotFound:
		return "file not found"
	case StatusMalformed:
		return "malformed"
	case StatusNoData:
		return "no data"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome summarizes a finished session.
type Outcome struct {
	Status     Status
	InputFile  string
	Table      *table.Table
	ExportFile string
}

// Session holds the collaborators of one dialogue.
type Session struct {
	cfg    *config.Config
	in     *bufio.Reader
	out    io.Writer
	keys   preview.KeyReader
	logger converter.Logger
}

// New creates a Session reading answers from in and writing to out.
// Preview keys are read line by line from in until SetKeyReader is called.
//
// PARAMETERS:
//   - cfg: The application configuration.
//   - in: Where answers are read from.
//   - out: Where prompts, tables and messages are written.
//   - logger: Receives diagnostic messages.
func New(cfg *config.Config, in io.Reader, out io.Writer, logger converter.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	return &Session{
		cfg:    cfg,
		in:     reader,
		out:    out,
		keys:   preview.NewLineKeyReader(reader),
		logger: logger,
	}
}

// SetKeyReader replaces the reader used for preview navigation keys.
func (s *Session) SetKeyReader(keys preview.KeyReader) {
	s.keys = keys
}

// Run executes the dialogue. path may be empty, in which case it is asked for.
// Missing files, malformed documents and empty documents end the session
// with the matching Status and a nil error; the error is reserved for
// output and export failures.
func (s *Session) Run(path string) (Outcome, error) {
	var outcome Outcome

	path = strings.TrimSpace(path)
	if path == "" {
		path = s.ask("XML file path: ")
	}
	path = strings.Trim(path, `"`)
	outcome.InputFile = path
	if path == "" {
		s.say("No file given.")
		outcome.Status = StatusNoInput
		return outcome, nil
	}

	// =========================================================================
	// LOAD
	// =========================================================================

	if !utils.FileExists(path) {
		s.say("File not found: %s", path)
		outcome.Status = StatusFileNotFound
		return outcome, nil
	}

	s.logger.Debug("Loading %s", path)
	tbl, err := xmlparser.Load(path)
	switch {
	case errors.Is(err, xmlparser.ErrFileNotFound):
		s.say("File not found: %s", path)
		outcome.Status = StatusFileNotFound
		return outcome, nil
	case xmlparser.IsMalformed(err):
		s.say("Could not read the XML document: %v", err)
		outcome.Status = StatusMalformed
		return outcome, nil
	case err != nil:
		return outcome, err
	}
	outcome.Table = tbl

	if tbl.Empty() {
		s.say("No data found under the root element.")
		outcome.Status = StatusNoData
		return outcome, nil
	}

	s.say("Loaded %d row(s).", tbl.Len())
	s.say("Columns: %s", tbl.Columns())

	conv := converter.New(path, s.exportOptions(), s.logger)

	// =========================================================================
	// SORT
	// =========================================================================

	if s.confirm("Sort the rows? (y/n): ") {
		tbl = s.sort(tbl)
		outcome.Table = tbl
	}

	// =========================================================================
	// PREVIEW
	// =========================================================================

	if err := s.preview(tbl); err != nil {
		return outcome, err
	}

	// =========================================================================
	// EXPORT
	// =========================================================================

	if s.confirm("Export? (y/n): ") {
		columns := s.selectColumns(
			"Columns to export (comma-separated, or 'all'): ",
			tbl.Columns(),
			validation.PurposeExport,
			tbl.Columns().Names(),
			"exporting all columns",
		)
		exportPath, err := conv.Export(tbl, columns)
		if err != nil {
			return outcome, err
		}
		outcome.ExportFile = exportPath
		s.say("Exported to %s", exportPath)
	}

	s.say("Done.")
	outcome.Status = StatusDone
	return outcome, nil
}

// sort asks for the column and order and applies them. An unknown column
// leaves tbl as it is.
func (s *Session) sort(tbl *table.Table) *table.Table {
	column, warning := validation.ValidateSortColumn(s.ask("Sort column: "), tbl.Columns())
	if warning != nil {
		s.logger.Debug("%s", warning.Error())
		if warning.Column == "" {
			s.say("No column given, sort skipped.")
		} else {
			s.say("Unknown column '%s', sort skipped.", warning.Column)
		}
		return tbl
	}

	order := strings.ToLower(s.ask("Order, a=ascending, d=descending (a/d): "))
	descending := strings.HasPrefix(order, "d")
	s.logger.Debug("Sorting by %s, descending=%t", column, descending)
	return tbl.Sort(column, descending)
}

func (s *Session) preview(tbl *table.Table) error {
	fallback := tbl.Columns().First(s.cfg.DefaultPreviewColumns)
	columns := s.selectColumns(
		"Columns to preview (comma-separated, or 'all'): ",
		tbl.Columns(),
		validation.PurposePreview,
		fallback,
		fmt.Sprintf("showing the first %d", len(fallback)),
	)
	printer := preview.NewPrinter(s.out, s.cfg.MaxCellWidth)
	return preview.Browse(s.out, printer, tbl, columns, s.cfg.PageSize, s.keys)
}

// selectColumns asks for a column list and reports what was dropped.
func (s *Session) selectColumns(prompt string, cols table.Columns, purpose string, fallback []string, fallbackNote string) []string {
	sel := validation.ResolveColumns(s.ask(prompt), cols, purpose, fallback)
	for _, e := range sel.Errors {
		s.say("Ignoring unknown column '%s'.", e.Column)
	}
	if sel.UsedFallback {
		s.say("No valid column selected, %s.", fallbackNote)
	}
	return sel.Columns
}

func (s *Session) exportOptions() converter.Options {
	format, err := export.ParseFormat(s.cfg.ExportFormat)
	if err != nil {
		s.logger.Warn("%v, using json", err)
		format = export.FormatJSON
	}
	return converter.Options{
		Format:     format,
		OutputDir:  s.cfg.ResolvedOutputDir(),
		NameFormat: s.cfg.OutputNameFormat,
	}
}

// =============================================================================
// CONSOLE HELPERS
// =============================================================================

// ask prints prompt and returns the trimmed answer. End of input reads as "".
func (s *Session) ask(prompt string) string {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Debug("read failed: %v", err)
	}
	return strings.TrimSpace(line)
}

// confirm asks a yes/no question. Only answers starting with y count as yes.
func (s *Session) confirm(prompt string) bool {
	answer := strings.ToLower(s.ask(prompt))
	return strings.HasPrefix(answer, "y")
}

func (s *Session) say(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// =============================================================================
// XML Table Converter - XML Parser Module
// =============================================================================
//
// This module loads an XML document and turns it into a table.Table:
// one Row per direct child element of the root ("item"), in document order.
//
// ERRORS:
//   - ErrFileNotFound        : the input path does not exist
//   - MalformedDocumentError : the XML does not parse, has no root, or
//                              has content beside the root element
//
// A root with no child elements is not an error: the result is an empty
// Table and the caller decides what to do with it.
//
// The document is read fully into memory. The file handle is released before
// Load returns.
//
// =============================================================================

package xmlparser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/ginjaninja78/xmltable/internal/table"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Load reads the XML file at path and flattens it into a Table.
//
// PARAMETERS:
//   - path: The path to the XML file.
//
// RETURNS:
//   - The flattened table (possibly empty).
//   - ErrFileNotFound or a *MalformedDocumentError on failure.
func Load(path string) (*table.Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat input file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	tbl, err := LoadReader(file)
	if err != nil {
		var malformed *MalformedDocumentError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}
	return tbl, nil
}

// LoadReader parses an XML document from r and flattens it into a Table.
func LoadReader(r io.Reader) (*table.Table, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, &MalformedDocumentError{Reason: "parse error", Err: err}
	}
	return FromDocument(doc)
}

// FromDocument flattens an already parsed document.
func FromDocument(doc *etree.Document) (*table.Table, error) {
	if err := checkSingleRoot(doc); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, &MalformedDocumentError{Reason: "document has no root element"}
	}

	items := root.ChildElements()
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, FlattenItem(item))
	}
	return table.New(rows), nil
}

// checkSingleRoot rejects documents with more than one top-level element or
// with text outside the root element.
func checkSingleRoot(doc *etree.Document) error {
	elements := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			elements++
		case *etree.CharData:
			if strings.TrimSpace(t.Data) != "" {
				return &MalformedDocumentError{Reason: "text outside the root element"}
			}
		}
	}
	if elements > 1 {
		return &MalformedDocumentError{Reason: "multiple root elements"}
	}
	return nil
}

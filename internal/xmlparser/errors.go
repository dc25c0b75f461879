package xmlparser

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when the input path does not exist or is not a
// regular file.
var ErrFileNotFound = errors.New("file not found")

// MalformedDocumentError reports an XML document that cannot be turned into
// a table: it failed to parse, or it has no root element.
type MalformedDocumentError struct {
	// Path is the input file, empty when reading from a stream.
	Path string

	// Reason is a short human-readable description.
	Reason string

	// Err is the underlying parser error, if any.
	Err error
}

// Error implements the error interface.
func (e *MalformedDocumentError) Error() string {
	msg := "malformed XML document"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying parser error.
func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// IsMalformed reports whether err is, or wraps, a MalformedDocumentError.
func IsMalformed(err error) bool {
	var target *MalformedDocumentError
	return errors.As(err, &target)
}

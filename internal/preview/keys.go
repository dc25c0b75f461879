package preview

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// KeyReader yields one key press at a time.
type KeyReader interface {
	ReadKey() (rune, error)
}

// =============================================================================
// TERMINAL KEYS
// =============================================================================

// terminalKeyReader reads single key presses without waiting for Enter by
// switching the terminal to raw mode for the duration of each read.
type terminalKeyReader struct {
	file *os.File
}

// NewTerminalKeyReader returns a raw-mode KeyReader for f, or false when f is
// not a terminal.
func NewTerminalKeyReader(f *os.File) (KeyReader, bool) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return nil, false
	}
	return &terminalKeyReader{file: f}, true
}

// ReadKey implements KeyReader. Ctrl-C and Ctrl-D are reported as 'q'.
func (r *terminalKeyReader) ReadKey() (rune, error) {
	fd := int(r.file.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, err
	}
	defer term.Restore(fd, state)

	var buf [utf8.UTFMax]byte
	n, err := r.file.Read(buf[:1])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}

	// Collect the continuation bytes of a multi-byte rune.
	size := 1
	for !utf8.FullRune(buf[:size]) && size < len(buf) {
		if _, err := r.file.Read(buf[size : size+1]); err != nil {
			break
		}
		size++
	}

	k, _ := utf8.DecodeRune(buf[:size])
	switch k {
	case 0x03, 0x04:
		return 'q', nil
	}
	return k, nil
}

// =============================================================================
// LINE KEYS
// =============================================================================

// lineKeyReader is used when input is not a terminal (pipes, tests): each
// line counts as one key press, its first non-blank character being the key.
type lineKeyReader struct {
	in *bufio.Reader
}

// NewLineKeyReader returns a KeyReader consuming whole lines from in.
// Sharing in with a prompt reader keeps buffered input in order.
func NewLineKeyReader(in *bufio.Reader) KeyReader {
	return &lineKeyReader{in: in}
}

// ReadKey implements KeyReader. A blank line yields '\n'.
func (r *lineKeyReader) ReadKey() (rune, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return '\n', nil
	}
	k, _ := utf8.DecodeRuneInString(line)
	return k, nil
}

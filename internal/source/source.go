// Package source reads an input file one line at a time.
package source

import (
	"bufio"
	"io"
	"os"

	"github.com/standardbeagle/find/internal/debug"
	"github.com/standardbeagle/find/internal/errors"
)

// DefaultBufferBytes is the size of the read buffer placed in front of the file
const DefaultBufferBytes = 64 * 1024

// Line is a single line of input.
// Text keeps the terminator exactly as read; the last line of a file may have none.
type Line struct {
	Number int // 1-based, counts every line
	Text   string
}

// LineSource yields the lines of a reader in order.
// It owns the underlying file when created with Open.
type LineSource struct {
	reader *bufio.Reader
	closer io.Closer
	next   int
	done   bool
	err    error
}

// Open opens path for reading. Failures are returned as *errors.FileError.
func Open(path string) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileError("open", path, err)
	}
	debug.LogSource("opened %s\n", path)

	src := New(f)
	src.closer = f
	return src, nil
}

// New wraps r in a buffered LineSource. The caller keeps ownership of r.
func New(r io.Reader) *LineSource {
	return &LineSource{
		reader: bufio.NewReaderSize(r, DefaultBufferBytes),
		next:   1,
	}
}

// Next returns the next line, or false once input is exhausted.
//
// A read error after the file was opened ends the sequence exactly like end
// of file does; the error is kept for Err and never surfaces to the caller
// of Next.
// TODO: decide whether mid-file read errors should change the exit status.
func (s *LineSource) Next() (Line, bool) {
	if s.done {
		return Line{}, false
	}

	text, err := s.reader.ReadString('\n')
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
			debug.LogSource("read stopped at line %d: %v\n", s.next, err)
			return Line{}, false
		}
		if text == "" {
			return Line{}, false
		}
	}

	line := Line{Number: s.next, Text: text}
	s.next++
	return line, true
}

// Err returns the read error that ended the sequence early, if any.
// End of file is not an error.
func (s *LineSource) Err() error {
	return s.err
}

// Close releases the file opened by Open. It is a no-op for sources built with New.
func (s *LineSource) Close() error {
	if s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

package display

import (
	"bufio"
	"io"
)

// Printer writes styled lines and flushes after each one so output
// appears as soon as a line is printed.
type Printer struct {
	w       *bufio.Writer
	resolve Resolver
}

// NewPrinter creates a printer that colours output with ANSI escapes
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithResolver(w, ANSI)
}

// NewPrinterWithResolver creates a printer using a custom style resolver
func NewPrinterWithResolver(w io.Writer, resolve Resolver) *Printer {
	if resolve == nil {
		resolve = ANSI
	}
	return &Printer{w: bufio.NewWriter(w), resolve: resolve}
}

// PrintLine writes every segment, each preceded by its style escape, then flushes.
// No separator is added; a line's own terminator travels in its last segment.
func (p *Printer) PrintLine(segments []Segment) error {
	if _, err := p.w.WriteString(Render(segments, p.resolve)); err != nil {
		return err
	}
	return p.w.Flush()
}

// Render returns the segments as a single string using resolve
func Render(segments []Segment, resolve Resolver) string {
	n := 0
	for _, seg := range segments {
		n += len(seg.Text) + 8
	}
	buf := make([]byte, 0, n)
	for _, seg := range segments {
		buf = append(buf, resolve(seg.Style)...)
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

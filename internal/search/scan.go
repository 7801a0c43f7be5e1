package search

import (
	"fmt"

	"github.com/standardbeagle/find/internal/debug"
	"github.com/standardbeagle/find/internal/display"
	"github.com/standardbeagle/find/internal/errors"
	"github.com/standardbeagle/find/internal/source"
)

// LineReader is the subset of *source.LineSource that Scan needs
type LineReader interface {
	Next() (source.Line, bool)
}

// Match is a line that contains the search term, with the span found
type Match struct {
	Line source.Line
	Span Span
}

// Before returns the text preceding the match
func (m Match) Before() string {
	return m.Line.Text[:m.Span.Start]
}

// Text returns the matched text as it appears in the line
func (m Match) Text() string {
	return m.Line.Text[m.Span.Start:m.Span.End()]
}

// After returns the text following the match, including the line terminator
func (m Match) After() string {
	return m.Line.Text[m.Span.End():]
}

// Annotate splits a match into styled segments: the line number right-aligned
// to two columns, the text before the match, the match, and the rest.
func Annotate(m Match) []display.Segment {
	return []display.Segment{
		{Style: display.StyleLineNumber, Text: fmt.Sprintf("%2d ", m.Line.Number)},
		{Style: display.StyleReset, Text: m.Before()},
		{Style: display.StyleMatch, Text: m.Text()},
		{Style: display.StyleReset, Text: m.After()},
	}
}

// Scan reads every line from lines and calls emit for each line that matches.
// Lines that do not match are still counted for numbering.
// It returns the number of matching lines and stops at the first emit error.
func Scan(lines LineReader, m *Matcher, emit func(Match) error) (int, error) {
	matched := 0
	total := 0
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		total++

		span, found := m.Find(line.Text)
		if !found {
			continue
		}
		matched++
		if err := emit(Match{Line: line, Span: span}); err != nil {
			return matched, err
		}
	}
	debug.LogSearch("scanned %d lines, %d matched\n", total, matched)
	return matched, nil
}

// PrintMatches scans lines and writes each match to p.
// A failed write is returned as *errors.OutputError.
func PrintMatches(lines LineReader, m *Matcher, p *display.Printer) (int, error) {
	return Scan(lines, m, func(match Match) error {
		if err := p.PrintLine(Annotate(match)); err != nil {
			return errors.NewOutputError(match.Line.Number, err)
		}
		return nil
	})
}

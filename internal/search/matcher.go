package search

import (
	"strings"

	"github.com/standardbeagle/find/internal/config"
	"github.com/standardbeagle/find/internal/debug"
)

// Span is the byte range [Start, Start+Len) of a match within a line's text
type Span struct {
	Start int
	Len   int
}

// End returns the offset just past the match
func (s Span) End() int {
	return s.Start + s.Len
}

// Matcher locates the leftmost occurrence of a search term in a line.
type Matcher struct {
	term       string
	folded     string // term lowered once, used only when ignoreCase is set
	ignoreCase bool
}

// NewMatcher prepares term for matching under cfg
func NewMatcher(term string, cfg config.Config) *Matcher {
	m := &Matcher{
		term:       term,
		folded:     term,
		ignoreCase: cfg.IgnoreCase,
	}
	if cfg.IgnoreCase {
		m.folded = ToLowerASCII(term)
	}
	debug.LogSearch("term=%q ignoreCase=%v\n", term, cfg.IgnoreCase)
	return m
}

// Term returns the search term as given
func (m *Matcher) Term() string {
	return m.term
}

// Find returns the span of the first match in line.
//
// The term is first searched for byte for byte. Only when that fails and
// ignore-case is on is the lowered term searched for in the lowered line.
// Lowering touches ASCII letters only, so offsets in the lowered line are
// valid in the original and the match length is the term's length.
func (m *Matcher) Find(line string) (Span, bool) {
	if i := strings.Index(line, m.term); i >= 0 {
		return Span{Start: i, Len: len(m.term)}, true
	}
	if !m.ignoreCase {
		return Span{}, false
	}
	if i := strings.Index(ToLowerASCII(line), m.folded); i >= 0 {
		return Span{Start: i, Len: len(m.folded)}, true
	}
	return Span{}, false
}

// ToLowerASCII lowers the ASCII letters A-Z and leaves every other byte alone.
// The result always has the same length as s.
func ToLowerASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

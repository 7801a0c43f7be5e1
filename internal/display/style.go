package display

import (
	"github.com/gookit/color"
)

// Style names how a piece of output should be rendered.
// Styles are turned into terminal escapes only when written.
type Style int

const (
	StyleReset      Style = iota // default terminal colour
	StyleLineNumber              // line number prefix
	StyleMatch                   // the matched span
)

// String returns the style name
func (s Style) String() string {
	switch s {
	case StyleReset:
		return "reset"
	case StyleLineNumber:
		return "line-number"
	case StyleMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Segment is a run of text rendered in one style
type Segment struct {
	Style Style
	Text  string
}

// Resolver maps a style to the bytes written before the segment's text
type Resolver func(Style) string

var (
	escLineNumber = color.StartSet + color.FgBlue.Code() + "m"
	escMatch      = color.StartSet + color.FgRed.Code() + "m"
)

// ANSI resolves styles to 16-colour escape sequences:
// blue line numbers, red matches, reset for everything else.
func ANSI(s Style) string {
	switch s {
	case StyleLineNumber:
		return escLineNumber
	case StyleMatch:
		return escMatch
	default:
		return color.ResetSet
	}
}

// Plain drops all styling
func Plain(Style) string {
	return ""
}

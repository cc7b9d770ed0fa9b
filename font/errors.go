package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrClosed is returned when a closed FontSource is used.
	ErrClosed = errors.New("font: source is closed")
)

// UnknownParserError is returned when WithParser names a parser that was
// never registered.
type UnknownParserError struct {
	Name string
}

func (e *UnknownParserError) Error() string {
	return "font: unknown parser " + e.Name
}

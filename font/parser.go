package font

import "sync"

// FontParser turns font file data into a ParsedFont.
//
// The default implementation, registered as "ximage", uses
// golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF).
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the parsed representation a Provider reads metrics from.
// Implementations must be safe for concurrent use.
//
// Sizes are in pixels per em.
type ParsedFont interface {
	// Name returns the font family name, or "" if unavailable.
	Name() string

	// FullName returns the full font name, or "" if unavailable.
	FullName() string

	// GlyphIndex returns the glyph for r. ok is false when the font has
	// no glyph for r; the index is then 0 (.notdef).
	GlyphIndex(r rune) (index uint16, ok bool)

	// GlyphAdvance returns the horizontal advance of a glyph.
	GlyphAdvance(index uint16, ppem float64, h Hinting) float64

	// Kern returns the kerning adjustment between two glyphs. A positive
	// value moves them apart.
	Kern(left, right uint16, ppem float64, h Hinting) float64

	// Metrics returns font-level vertical metrics.
	Metrics(ppem float64, h Hinting) Metrics
}

// Metrics holds font-level metrics at a specific size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line (positive).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Hinting selects how metrics are rounded to the pixel grid.
type Hinting uint8

const (
	// HintingNone keeps fractional metrics (default).
	HintingNone Hinting = iota
	// HintingVertical rounds vertical metrics.
	HintingVertical
	// HintingFull rounds horizontal and vertical metrics.
	HintingFull
)

const defaultParserName = "ximage"

var (
	parsersMu sync.RWMutex
	parsers   = map[string]FontParser{
		defaultParserName: ximageParser{},
	}
)

// RegisterParser registers a font parser under name, replacing any parser
// already registered with that name.
func RegisterParser(name string, p FontParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = p
}

func lookupParser(name string) (FontParser, error) {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	p, ok := parsers[name]
	if !ok {
		return nil, &UnknownParserError{Name: name}
	}
	return p, nil
}

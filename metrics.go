package textbox

// DefaultTabSize is the width of a tab in spaces.
const DefaultTabSize = 4

// FontMetricsProvider is the narrow capability the layout core needs from a
// font backend. Implementations must be safe for concurrent use.
//
// The font package provides an implementation over golang.org/x/image.
type FontMetricsProvider interface {
	// LookupGlyph returns the glyph index and horizontal advance for r at
	// the given size (pixels per em). Missing characters should map to a
	// fallback glyph; the core propagates whatever index is returned.
	LookupGlyph(r rune, size float64) (GlyphID, float64)

	// Kerning returns the signed advance adjustment between two adjacent glyphs.
	Kerning(left, right GlyphID, size float64) float64

	// VerticalMetrics returns ascent, descent and line gap at the given size.
	VerticalMetrics(size float64) VerticalMetrics

	// SizeFactor is the backend's unit conversion constant. Requested font
	// sizes are multiplied by it before any of the methods above is called.
	SizeFactor() float64
}

// VerticalMetrics holds font-level vertical metrics at a specific size.
type VerticalMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the font (positive).
	Descent float64
	// LineGap is the recommended gap between lines.
	LineGap float64
}

// LineHeight returns ascent + descent + line gap.
func (m VerticalMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics is the snapshot of font metrics used by every layout stage.
// It is derived once per layout call and passed by value.
type Metrics struct {
	// SpaceWidth is the advance of the space character.
	SpaceWidth float64
	// TabWidth is the caret advance of a tab.
	TabWidth float64
	// VerticalAdvance is the distance between consecutive baselines.
	VerticalAdvance float64
	// TopOffset is the ascent reserved above the first baseline.
	TopOffset float64
}

// NewMetrics derives a Metrics snapshot. size is in backend units (already
// multiplied by the provider's SizeFactor), lineHeight is a multiplier where
// zero means 1.0, and tabSize is the tab width in spaces where zero means
// DefaultTabSize.
func NewMetrics(font FontMetricsProvider, size, lineHeight float64, tabSize int) Metrics {
	if lineHeight <= 0 {
		lineHeight = 1
	}
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}

	_, space := font.LookupGlyph(' ', size)
	withLineHeight := size * lineHeight

	return Metrics{
		SpaceWidth:      space,
		TabWidth:        float64(tabSize) * space,
		VerticalAdvance: withLineHeight,
		TopOffset:       font.VerticalMetrics(withLineHeight).Ascent,
	}
}

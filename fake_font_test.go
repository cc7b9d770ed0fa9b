package textbox

import "math"

// fakeFont is a deterministic FontMetricsProvider. Every glyph is half an
// em wide, a space is a quarter em, and the glyph ID is the rune itself.
type fakeFont struct {
	kern   map[[2]GlyphID]float64 // in ems
	factor float64
}

func newFakeFont() *fakeFont {
	return &fakeFont{factor: 1}
}

func (f *fakeFont) withKern(left, right rune, ems float64) *fakeFont {
	if f.kern == nil {
		f.kern = make(map[[2]GlyphID]float64)
	}
	f.kern[[2]GlyphID{GlyphID(left), GlyphID(right)}] = ems
	return f
}

func (f *fakeFont) LookupGlyph(r rune, size float64) (GlyphID, float64) {
	if r == ' ' {
		return GlyphID(r), 0.25 * size
	}
	return GlyphID(r), 0.5 * size
}

func (f *fakeFont) Kerning(left, right GlyphID, size float64) float64 {
	return f.kern[[2]GlyphID{left, right}] * size
}

func (f *fakeFont) VerticalMetrics(size float64) VerticalMetrics {
	return VerticalMetrics{Ascent: 0.8 * size, Descent: 0.2 * size}
}

func (f *fakeFont) SizeFactor() float64 {
	return f.factor
}

// testMetrics are the metrics of fakeFont at size 10 and line height 1.
var testMetrics = Metrics{
	SpaceWidth:      2.5,
	TabWidth:        10,
	VerticalAdvance: 10,
	TopOffset:       8,
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// glyphAt returns the first glyph for r.
func glyphAt(glyphs []PositionedGlyph, r rune) (PositionedGlyph, bool) {
	for _, g := range glyphs {
		if g.Rune == r {
			return g, true
		}
	}
	return PositionedGlyph{}, false
}

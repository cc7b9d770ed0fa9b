package textbox

// Delta is a positional correction added to one glyph.
type Delta struct {
	X, Y float64
}

// ShapingAdjuster computes per-glyph corrections from the segmented tokens,
// before glyphs are placed. The returned slice is indexed like the glyphs
// the tokens will produce (words in order, glyphs in order). An empty slice
// leaves positions unchanged.
type ShapingAdjuster interface {
	ShapingDeltas(tokens []Token, size float64) []Delta
}

// JustificationAdjuster computes per-glyph corrections from the placed,
// left-aligned glyphs and the line table. An empty slice leaves positions
// unchanged.
type JustificationAdjuster interface {
	JustificationDeltas(glyphs []PositionedGlyph, lines []LineBreakEntry) []Delta
}

// ShapingFunc adapts a function to ShapingAdjuster.
type ShapingFunc func(tokens []Token, size float64) []Delta

// ShapingDeltas calls f(tokens, size).
func (f ShapingFunc) ShapingDeltas(tokens []Token, size float64) []Delta {
	return f(tokens, size)
}

// JustificationFunc adapts a function to JustificationAdjuster.
type JustificationFunc func(glyphs []PositionedGlyph, lines []LineBreakEntry) []Delta

// JustificationDeltas calls f(glyphs, lines).
func (f JustificationFunc) JustificationDeltas(glyphs []PositionedGlyph, lines []LineBreakEntry) []Delta {
	return f(glyphs, lines)
}

// IdentityShaping is the default shaping adjuster. It returns no deltas.
var IdentityShaping ShapingAdjuster = ShapingFunc(func([]Token, float64) []Delta { return nil })

// IdentityJustification is the default justification adjuster. It returns no deltas.
var IdentityJustification JustificationAdjuster = JustificationFunc(func([]PositionedGlyph, []LineBreakEntry) []Delta { return nil })

// applyDeltas adds deltas to glyphs in place.
func applyDeltas(stage string, glyphs []PositionedGlyph, deltas []Delta) error {
	if len(deltas) == 0 {
		return nil
	}
	if len(deltas) != len(glyphs) {
		return malformed(stage, "got %d deltas for %d glyphs", len(deltas), len(glyphs))
	}
	for i, d := range deltas {
		glyphs[i].X += d.X
		glyphs[i].Y += d.Y
	}
	return nil
}

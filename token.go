package textbox

// Token is one semantic item produced by Segment: a Word, a Tab or a
// LineBreak. The set is closed; consumers switch over the three types.
type Token interface {
	token()
}

// Word is a run of glyphs delimited by whitespace or line breaks.
type Word struct {
	// Text is the normalized text of the word.
	Text string

	// Glyphs are positioned relative to the word's own left edge.
	Glyphs []WordGlyph

	// TotalWidth is the sum of glyph advances plus intra-word kerning.
	// Kerning may be negative.
	TotalWidth float64
}

// Tab advances the caret by the tab width without emitting a glyph.
type Tab struct{}

// LineBreak forces a new line.
type LineBreak struct{}

func (Word) token()      {}
func (Tab) token()       {}
func (LineBreak) token() {}

// WordGlyph is a glyph inside a Word.
type WordGlyph struct {
	ID   GlyphID
	Rune rune

	// X, Y are relative to the word origin.
	X, Y float64

	// Advance is the glyph's horizontal advance, without kerning.
	Advance float64
}

// wordBuilder accumulates the glyphs of the word being segmented.
type wordBuilder struct {
	runes  []rune
	glyphs []WordGlyph
	caret  float64
}

func (b *wordBuilder) empty() bool {
	return len(b.glyphs) == 0
}

// last returns the previous glyph of the current word, if any.
func (b *wordBuilder) last() (GlyphID, bool) {
	if len(b.glyphs) == 0 {
		return 0, false
	}
	return b.glyphs[len(b.glyphs)-1].ID, true
}

// push appends a glyph. kern is applied to the caret before the glyph is
// positioned.
func (b *wordBuilder) push(r rune, id GlyphID, advance, kern float64) {
	b.caret += kern
	b.glyphs = append(b.glyphs, WordGlyph{
		ID:      id,
		Rune:    r,
		X:       b.caret,
		Advance: advance,
	})
	b.caret += advance
	b.runes = append(b.runes, r)
}

// flush returns the accumulated word and resets the builder.
func (b *wordBuilder) flush() Word {
	w := Word{
		Text:       string(b.runes),
		Glyphs:     b.glyphs,
		TotalWidth: b.caret,
	}
	b.runes = b.runes[:0]
	b.glyphs = nil
	b.caret = 0
	return w
}

// countGlyphs returns the number of glyphs carried by tokens.
func countGlyphs(tokens []Token) int {
	n := 0
	for _, tok := range tokens {
		if w, ok := tok.(Word); ok {
			n += len(w.Glyphs)
		}
	}
	return n
}

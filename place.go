package textbox

// LineBreakEntry describes one laid out line.
type LineBreakEntry struct {
	// LastGlyph is the index of the line's last glyph. A line without
	// glyphs repeats the previous line's value (-1 before the first glyph).
	LastGlyph int

	// TrailingSlack is the free horizontal space after the line's final caret.
	TrailingSlack float64
}

// lineCursor tracks the caret of the line being built. It is shared by the
// overflow estimator and the placer so both break lines identically.
type lineCursor struct {
	caret float64
	// trailing is the space reserved after the line's last word.
	trailing float64
	used     bool
}

// wraps reports whether a word of the given width must start a new line.
// A word never wraps away from an empty line.
func (c *lineCursor) wraps(wordWidth, limit float64) bool {
	return c.used && c.caret+wordWidth > limit
}

func (c *lineCursor) addWord(wordWidth, space float64) {
	c.caret += wordWidth + space
	c.trailing = space
	c.used = true
}

func (c *lineCursor) addTab(tab float64) {
	c.caret += tab
	c.trailing = 0
	c.used = true
}

// width is the caret without the space reserved after the last word.
func (c *lineCursor) width() float64 {
	return c.caret - c.trailing
}

func (c *lineCursor) reset() {
	*c = lineCursor{}
}

// placeLeftAligned places glyphs line by line at y = 0. When bounded, a
// word that does not fit in maxWidth moves to the next line; otherwise
// lines only break on LineBreak tokens.
//
// Slack is maxWidth minus the final caret when bounded, and the distance to
// the widest caret otherwise. The caret includes the space reserved after
// the line's last word.
func placeLeftAligned(tokens []Token, maxWidth float64, bounded bool, m Metrics) ([]PositionedGlyph, []LineBreakEntry) {
	var (
		glyphs = make([]PositionedGlyph, 0, countGlyphs(tokens))
		lines  []LineBreakEntry
		line   lineCursor
		num    int
		widest float64
	)

	endLine := func() {
		slack := line.caret
		if bounded {
			slack = maxWidth - line.caret
		}
		lines = append(lines, LineBreakEntry{LastGlyph: len(glyphs) - 1, TrailingSlack: slack})
		widest = max(widest, line.caret)
		line.reset()
		num++
	}

	for _, tok := range tokens {
		switch t := tok.(type) {
		case Word:
			if bounded && line.wraps(t.TotalWidth, maxWidth) {
				endLine()
			}
			baseline := float64(num)*m.VerticalAdvance + m.TopOffset
			for _, g := range t.Glyphs {
				glyphs = append(glyphs, PositionedGlyph{
					ID:   g.ID,
					Rune: g.Rune,
					X:    line.caret + g.X,
					Y:    baseline + g.Y,
				})
			}
			line.addWord(t.TotalWidth, m.SpaceWidth)
		case Tab:
			line.addTab(m.TabWidth)
		case LineBreak:
			endLine()
		}
	}

	if len(glyphs) > 0 {
		endLine()
	}

	// Without a bound, slack is relative to the widest line.
	if !bounded {
		for i := range lines {
			lines[i].TrailingSlack = widest - lines[i].TrailingSlack
		}
	}

	return glyphs, lines
}

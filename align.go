package textbox

// validateLineTable checks the line table against the glyph count. An empty
// table is only valid for an empty glyph slice.
func validateLineTable(glyphs []PositionedGlyph, lines []LineBreakEntry) error {
	if len(lines) == 0 {
		if len(glyphs) != 0 {
			return malformed("align", "no line entries for %d glyphs", len(glyphs))
		}
		return nil
	}

	prev := -1
	for i, l := range lines {
		if l.LastGlyph < prev {
			return malformed("align", "line %d ends at glyph %d before line %d (%d)", i, l.LastGlyph, i-1, prev)
		}
		if l.LastGlyph >= len(glyphs) {
			return malformed("align", "line %d ends at glyph %d, have %d glyphs", i, l.LastGlyph, len(glyphs))
		}
		prev = l.LastGlyph
	}

	if last := lines[len(lines)-1].LastGlyph; last != len(glyphs)-1 {
		return malformed("align", "last line ends at glyph %d, want %d", last, len(glyphs)-1)
	}
	return nil
}

// alignHorizontal shifts every line right by its trailing slack times the
// alignment factor.
func alignHorizontal(glyphs []PositionedGlyph, lines []LineBreakEntry, align HorizontalAlign) error {
	if err := validateLineTable(glyphs, lines); err != nil {
		return err
	}

	f := align.factor()
	if f == 0 || len(glyphs) == 0 {
		return nil
	}

	line := 0
	for i := range glyphs {
		for i > lines[line].LastGlyph {
			line++
		}
		glyphs[i].X += lines[line].TrailingSlack * f
	}
	return nil
}

// alignVertical shifts the whole block down by the vertical slack times the
// alignment factor. Overflowing content is not shifted.
func alignVertical(glyphs []PositionedGlyph, vertical AxisOverflow, align VerticalAlign) {
	if vertical.IsOverflowing() {
		return
	}
	dy := vertical.Slack() * align.factor()
	if dy == 0 {
		return
	}
	for i := range glyphs {
		glyphs[i].Y += dy
	}
}

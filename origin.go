package textbox

// translate moves glyphs from layout space to destination space. It is not
// idempotent and runs exactly once per layout.
func translate(glyphs []PositionedGlyph, origin Point) {
	if origin.X == 0 && origin.Y == 0 {
		return
	}
	for i := range glyphs {
		glyphs[i].X += origin.X
		glyphs[i].Y += origin.Y
	}
}

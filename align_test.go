package textbox

import (
	"errors"
	"testing"
)

func makeGlyphs(n int) []PositionedGlyph {
	glyphs := make([]PositionedGlyph, n)
	for i := range glyphs {
		glyphs[i].X = float64(i)
	}
	return glyphs
}

func TestValidateLineTable(t *testing.T) {
	tests := []struct {
		name    string
		glyphs  int
		lines   []LineBreakEntry
		wantErr bool
	}{
		{"empty", 0, nil, false},
		{"glyphs without lines", 3, nil, true},
		{"single line", 3, []LineBreakEntry{{LastGlyph: 2}}, false},
		{"empty lines", 3, []LineBreakEntry{{LastGlyph: -1}, {LastGlyph: 1}, {LastGlyph: 1}, {LastGlyph: 2}}, false},
		{"decreasing", 3, []LineBreakEntry{{LastGlyph: 2}, {LastGlyph: 1}}, true},
		{"out of range", 3, []LineBreakEntry{{LastGlyph: 3}}, true},
		{"last short", 3, []LineBreakEntry{{LastGlyph: 1}}, true},
		{"below minus one", 3, []LineBreakEntry{{LastGlyph: -2}, {LastGlyph: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLineTable(makeGlyphs(tt.glyphs), tt.lines)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateLineTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformedLayout) {
				t.Errorf("error %v does not wrap ErrMalformedLayout", err)
			}
		})
	}
}

func TestAlignHorizontal(t *testing.T) {
	lines := []LineBreakEntry{
		{LastGlyph: 1, TrailingSlack: 10},
		{LastGlyph: 1, TrailingSlack: 40},
		{LastGlyph: 3, TrailingSlack: 20},
	}

	tests := []struct {
		align HorizontalAlign
		want  []float64
	}{
		{AlignLeft, []float64{0, 1, 2, 3}},
		{AlignCenter, []float64{5, 6, 12, 13}},
		{AlignRight, []float64{10, 11, 22, 23}},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			glyphs := makeGlyphs(4)
			if err := alignHorizontal(glyphs, lines, tt.align); err != nil {
				t.Fatalf("alignHorizontal() error = %v", err)
			}
			for i, g := range glyphs {
				if g.X != tt.want[i] {
					t.Errorf("glyph %d X = %v, want %v", i, g.X, tt.want[i])
				}
			}
		})
	}
}

func TestAlignHorizontalRejectsBadTable(t *testing.T) {
	glyphs := makeGlyphs(3)
	err := alignHorizontal(glyphs, []LineBreakEntry{{LastGlyph: 1, TrailingSlack: 4}}, AlignLeft)

	var mle *MalformedLayoutError
	if !errors.As(err, &mle) {
		t.Fatalf("alignHorizontal() error = %v, want *MalformedLayoutError", err)
	}
	if mle.Stage != "align" {
		t.Errorf("Stage = %q, want %q", mle.Stage, "align")
	}
}

func TestAlignVertical(t *testing.T) {
	tests := []struct {
		name     string
		vertical AxisOverflow
		align    VerticalAlign
		want     float64
	}{
		{"top", InBounds(40), AlignTop, 0},
		{"middle", InBounds(40), AlignMiddle, 20},
		{"bottom", InBounds(40), AlignBottom, 40},
		{"overflowing middle", Overflowing(40), AlignMiddle, 0},
		{"overflowing bottom", Overflowing(40), AlignBottom, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyphs := []PositionedGlyph{{Y: 8}, {Y: 18}}
			alignVertical(glyphs, tt.vertical, tt.align)
			if glyphs[0].Y != 8+tt.want || glyphs[1].Y != 18+tt.want {
				t.Errorf("Y = (%v, %v), want shift by %v", glyphs[0].Y, glyphs[1].Y, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	glyphs := []PositionedGlyph{{X: 1, Y: 2}, {X: 3, Y: 4}}

	translate(glyphs, Point{X: 10, Y: 20})
	if glyphs[0] != (PositionedGlyph{X: 11, Y: 22}) || glyphs[1] != (PositionedGlyph{X: 13, Y: 24}) {
		t.Errorf("translate() = %+v", glyphs)
	}

	// Translation is additive, not idempotent.
	translate(glyphs, Point{X: 10, Y: 20})
	if glyphs[0].X != 21 || glyphs[0].Y != 42 {
		t.Errorf("second translate() = %+v, want X=21 Y=42", glyphs[0])
	}
}

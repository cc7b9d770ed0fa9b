package textbox

import (
	"reflect"
	"testing"
)

func TestLineCursor(t *testing.T) {
	var c lineCursor
	if c.wraps(1000, 10) {
		t.Error("empty line must not wrap")
	}

	c.addWord(15, 2.5)
	if got := c.width(); got != 15 {
		t.Errorf("width() after word = %v, want 15", got)
	}
	if !c.wraps(15, 30) {
		t.Error("wraps(15, 30) = false, want true at caret 17.5")
	}
	if c.wraps(12.5, 30) {
		t.Error("wraps(12.5, 30) = true, want false (exact fit)")
	}

	c.addTab(10)
	if got := c.width(); got != 27.5 {
		t.Errorf("width() after tab = %v, want 27.5", got)
	}

	c.reset()
	if c != (lineCursor{}) {
		t.Errorf("reset() left %+v", c)
	}
}

func TestPlaceLeftAlignedLineTable(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		width   float64
		bounded bool
		want    []LineBreakEntry
	}{
		{
			name:    "single line",
			text:    "aaa bbb",
			width:   100,
			bounded: true,
			want:    []LineBreakEntry{{LastGlyph: 5, TrailingSlack: 65}},
		},
		{
			name:    "wrapped",
			text:    "aaa bbb",
			width:   20,
			bounded: true,
			want:    []LineBreakEntry{{LastGlyph: 2, TrailingSlack: 2.5}, {LastGlyph: 5, TrailingSlack: 2.5}},
		},
		{
			name:    "empty line repeats previous index",
			text:    "a\n\nb",
			width:   100,
			bounded: true,
			want: []LineBreakEntry{
				{LastGlyph: 0, TrailingSlack: 92.5},
				{LastGlyph: 0, TrailingSlack: 100},
				{LastGlyph: 1, TrailingSlack: 92.5},
			},
		},
		{
			name:    "leading break",
			text:    "\na",
			width:   100,
			bounded: true,
			want:    []LineBreakEntry{{LastGlyph: -1, TrailingSlack: 100}, {LastGlyph: 0, TrailingSlack: 92.5}},
		},
		{
			name:    "unbounded slack against widest line",
			text:    "aa\naaaa",
			bounded: false,
			want:    []LineBreakEntry{{LastGlyph: 1, TrailingSlack: 10}, {LastGlyph: 5, TrailingSlack: 0}},
		},
		{
			name:    "oversized word stays on its line",
			text:    "aaaaaaaa",
			width:   10,
			bounded: true,
			want:    []LineBreakEntry{{LastGlyph: 7, TrailingSlack: -32.5}},
		},
	}

	font := newFakeFont()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, lines := placeLeftAligned(Segment(tt.text, font, 10), tt.width, tt.bounded, testMetrics)
			if !reflect.DeepEqual(lines, tt.want) {
				t.Errorf("lines = %+v, want %+v", lines, tt.want)
			}
		})
	}
}

func TestPlaceLeftAlignedPositions(t *testing.T) {
	glyphs, _ := placeLeftAligned(Segment("Hello World", newFakeFont(), 10), 40, true, testMetrics)

	if len(glyphs) != 10 {
		t.Fatalf("len(glyphs) = %d, want 10", len(glyphs))
	}

	h := glyphs[0]
	if h.X != 0 || h.Y != 8 {
		t.Errorf("H at (%v, %v), want (0, 8)", h.X, h.Y)
	}
	w := glyphs[5]
	if w.Rune != 'W' || w.X != 0 || w.Y != 18 {
		t.Errorf("glyph 5 = %+v, want W at (0, 18)", w)
	}
	if d := glyphs[9]; d.X != 20 {
		t.Errorf("d X = %v, want 20", d.X)
	}
}

func TestPlaceLeftAlignedNoTrailingEntryWithoutGlyphs(t *testing.T) {
	glyphs, lines := placeLeftAligned(Segment("\t", newFakeFont(), 10), 100, true, testMetrics)
	if len(glyphs) != 0 || len(lines) != 0 {
		t.Errorf("got %d glyphs, %d lines, want none", len(glyphs), len(lines))
	}
}

func TestPlaceLeftAlignedMatchesEstimate(t *testing.T) {
	// The placer and the estimator must agree on the number of lines.
	texts := []string{
		"aaa bbb ccc ddd",
		"The quick brown fox jumps over the lazy dog",
		"a\tb\tc d e f g",
		"one\n\ntwo three four",
	}
	font := newFakeFont()
	for _, text := range texts {
		tokens := Segment(text, font, 10)
		for _, width := range []float64{10, 29, 34, 60, 500} {
			_, lines := placeLeftAligned(tokens, width, true, testMetrics)
			e := measureTokens(tokens, width, true, testMetrics)
			wantLines := int((e.height-testMetrics.TopOffset)/testMetrics.VerticalAdvance) + 1
			if len(lines) != wantLines {
				t.Errorf("%q at width %v: placer made %d lines, estimator %d", text, width, len(lines), wantLines)
			}
		}
	}
}

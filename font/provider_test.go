package font

import (
	"math"
	"testing"

	"github.com/gogpu/textbox"
	"golang.org/x/image/font/gofont/goregular"
)

func TestProviderLookupGlyph(t *testing.T) {
	p := NewProvider(loadGoRegular(t))

	id, adv := p.LookupGlyph('A', 16)
	if id == 0 {
		t.Error("LookupGlyph('A') returned .notdef")
	}
	if adv <= 0 || adv > 16 {
		t.Errorf("advance of 'A' at 16px = %v, want in (0, 16]", adv)
	}

	_, adv32 := p.LookupGlyph('A', 32)
	if math.Abs(adv32-2*adv) > 0.1 {
		t.Errorf("advance at 32px = %v, want about %v", adv32, 2*adv)
	}

	if _, space := p.LookupGlyph(' ', 16); space <= 0 {
		t.Errorf("space advance = %v, want > 0", space)
	}
}

func TestProviderMissingGlyph(t *testing.T) {
	p := NewProvider(loadGoRegular(t))

	id, adv := p.LookupGlyph('\U0010FFFD', 16)
	if id != 0 {
		t.Errorf("missing rune glyph = %d, want 0", id)
	}
	if adv < 0 {
		t.Errorf("notdef advance = %v, want >= 0", adv)
	}
}

func TestProviderCachesLookups(t *testing.T) {
	p := NewProvider(loadGoRegular(t))

	p.LookupGlyph('x', 12)
	p.LookupGlyph('x', 12)
	p.LookupGlyph('x', 13)

	s := p.CacheStats()
	if s.Hits != 1 || s.Misses != 2 {
		t.Errorf("CacheStats() = %+v, want 1 hit and 2 misses", s)
	}
	if s.Len != 2 {
		t.Errorf("Len = %d, want 2", s.Len)
	}
}

func TestProviderVerticalMetrics(t *testing.T) {
	p := NewProvider(loadGoRegular(t))

	m := p.VerticalMetrics(20)
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("VerticalMetrics(20) = %+v, want positive ascent and descent", m)
	}
	if m.LineGap < 0 {
		t.Errorf("LineGap = %v, want >= 0", m.LineGap)
	}
	if m.Ascent > 20 {
		t.Errorf("Ascent = %v exceeds the em size", m.Ascent)
	}
}

func TestProviderKerningIsDeterministic(t *testing.T) {
	p := NewProvider(loadGoRegular(t))

	a, _ := p.LookupGlyph('A', 16)
	v, _ := p.LookupGlyph('V', 16)
	k1 := p.Kerning(a, v, 16)
	k2 := p.Kerning(a, v, 16)
	if k1 != k2 || math.IsNaN(k1) {
		t.Errorf("Kerning(A, V) = %v then %v", k1, k2)
	}
	if k := p.Kerning(65535, 65534, 16); k != 0 {
		t.Errorf("Kerning(out of range) = %v, want 0", k)
	}
}

func TestProviderOptions(t *testing.T) {
	p := NewProvider(loadGoRegular(t, WithSizeFactor(PointsToPixels), WithHinting(HintingFull)))
	if p.SizeFactor() != PointsToPixels {
		t.Errorf("SizeFactor() = %v, want %v", p.SizeFactor(), PointsToPixels)
	}

	_, adv := p.LookupGlyph('a', 15)
	if adv != math.Round(adv) {
		t.Errorf("full hinting advance = %v, want a whole pixel", adv)
	}

	if NewProvider(loadGoRegular(t, WithSizeFactor(-2))).SizeFactor() != 1 {
		t.Error("non-positive size factor was not ignored")
	}
}

func TestProviderClosedSource(t *testing.T) {
	source := loadGoRegular(t)
	p := NewProvider(source)
	_ = source.Close()

	if id, adv := p.LookupGlyph('A', 16); id != 0 || adv != 0 {
		t.Errorf("LookupGlyph after Close = %d, %v, want 0, 0", id, adv)
	}
	if m := p.VerticalMetrics(16); m != (textbox.VerticalMetrics{}) {
		t.Errorf("VerticalMetrics after Close = %+v", m)
	}
}

func TestProviderFontID(t *testing.T) {
	newSource := func(opts ...SourceOption) *FontSource {
		t.Helper()
		s, err := NewFontSource(goregular.TTF, opts...)
		if err != nil {
			t.Fatalf("NewFontSource() error = %v", err)
		}
		t.Cleanup(func() { _ = s.Close() })
		return s
	}

	base := NewProvider(newSource()).FontID()
	if same := NewProvider(newSource()).FontID(); same != base {
		t.Errorf("same data and options gave FontIDs %x and %x", base, same)
	}

	variants := map[string][]SourceOption{
		"hinting":     {WithHinting(HintingFull)},
		"size factor": {WithSizeFactor(PointsToPixels)},
	}
	for name, opts := range variants {
		if id := NewProvider(newSource(opts...)).FontID(); id == base {
			t.Errorf("%s: FontID() = %x, want it to differ from the default", name, id)
		}
	}
}

func TestLayoutWithGoRegular(t *testing.T) {
	p := NewProvider(loadGoRegular(t))

	res, err := textbox.Layout(textbox.Request{
		Bounds:   textbox.Rect{X: 5, Y: 5, Width: 400, Height: 100},
		Text:     "Hello World",
		Font:     p,
		FontSize: 16,
	})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(res.Glyphs) != 10 {
		t.Fatalf("len(Glyphs) = %d, want 10", len(res.Glyphs))
	}
	if res.Overflow.Horizontal.IsOverflowing() || res.Overflow.Vertical.IsOverflowing() {
		t.Errorf("Overflow = %+v, want in bounds", res.Overflow)
	}

	baseline := res.Glyphs[0].Y
	for i, g := range res.Glyphs {
		if g.ID == 0 {
			t.Errorf("glyph %d (%q) is .notdef", i, g.Rune)
		}
		if g.Y != baseline {
			t.Errorf("glyph %d Y = %v, want %v", i, g.Y, baseline)
		}
		if i > 0 && g.X <= res.Glyphs[i-1].X {
			t.Errorf("glyph %d X = %v not after previous %v", i, g.X, res.Glyphs[i-1].X)
		}
	}
	if res.Glyphs[0].X != 5 {
		t.Errorf("first glyph X = %v, want 5", res.Glyphs[0].X)
	}
}

func TestLayoutWithGoRegularWraps(t *testing.T) {
	p := NewProvider(loadGoRegular(t))

	res, err := textbox.Layout(textbox.Request{
		Bounds:   textbox.Rect{Width: 60, Height: 200},
		Text:     "one two three four five",
		Font:     p,
		FontSize: 16,
	})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	lines := map[float64]bool{}
	for _, g := range res.Glyphs {
		lines[g.Y] = true
		if g.X < 0 {
			t.Errorf("glyph %q X = %v < 0", g.Rune, g.X)
		}
	}
	if len(lines) < 3 {
		t.Errorf("text spans %d lines, want at least 3", len(lines))
	}
}

func BenchmarkProviderLookupGlyph(b *testing.B) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	p := NewProvider(source)
	b.ReportAllocs()
	for b.Loop() {
		p.LookupGlyph('g', 14)
	}
}

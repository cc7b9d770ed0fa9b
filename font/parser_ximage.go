package font

import (
	"fmt"
	"math"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &ximageFont{font: f}, nil
}

// ximageFont implements ParsedFont over sfnt.Font. sfnt methods are safe
// for concurrent use as long as each call gets its own Buffer.
type ximageFont struct {
	font    *opentype.Font
	buffers sync.Pool
}

func (f *ximageFont) buffer() *sfnt.Buffer {
	if b, ok := f.buffers.Get().(*sfnt.Buffer); ok {
		return b
	}
	return new(sfnt.Buffer)
}

func (f *ximageFont) release(b *sfnt.Buffer) {
	f.buffers.Put(b)
}

func (f *ximageFont) Name() string {
	return f.name(sfnt.NameIDFamily)
}

func (f *ximageFont) FullName() string {
	return f.name(sfnt.NameIDFull)
}

func (f *ximageFont) name(id sfnt.NameID) string {
	b := f.buffer()
	defer f.release(b)
	s, err := f.font.Name(b, id)
	if err != nil {
		return ""
	}
	return s
}

func (f *ximageFont) GlyphIndex(r rune) (uint16, bool) {
	b := f.buffer()
	defer f.release(b)
	idx, err := f.font.GlyphIndex(b, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return uint16(idx), true
}

func (f *ximageFont) GlyphAdvance(index uint16, ppem float64, h Hinting) float64 {
	b := f.buffer()
	defer f.release(b)
	adv, err := f.font.GlyphAdvance(b, sfnt.GlyphIndex(index), toFixed(ppem), h.ximage())
	if err != nil {
		return 0
	}
	return fromFixed(adv)
}

func (f *ximageFont) Kern(left, right uint16, ppem float64, h Hinting) float64 {
	b := f.buffer()
	defer f.release(b)
	k, err := f.font.Kern(b, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), toFixed(ppem), h.ximage())
	if err != nil {
		// sfnt.ErrNotFound: the pair has no GPOS entry.
		return 0
	}
	return fromFixed(k)
}

func (f *ximageFont) Metrics(ppem float64, h Hinting) Metrics {
	b := f.buffer()
	defer f.release(b)
	m, err := f.font.Metrics(b, toFixed(ppem), h.ximage())
	if err != nil {
		return Metrics{}
	}

	ascent := fromFixed(m.Ascent)
	descent := fromFixed(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: max(0, fromFixed(m.Height)-ascent-descent),
	}
}

func (h Hinting) ximage() xfont.Hinting {
	switch h {
	case HintingVertical:
		return xfont.HintingVertical
	case HintingFull:
		return xfont.HintingFull
	default:
		return xfont.HintingNone
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}

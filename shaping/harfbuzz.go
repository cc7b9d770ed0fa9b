// Package shaping corrects segmenter glyph positions with HarfBuzz shaping
// from go-text/typesetting.
//
// HarfBuzz implements textbox.ShapingAdjuster. It shapes every word on its
// own and reports, per glyph, how far the HarfBuzz pen position is from the
// position the segmenter computed from plain advances and pair kerning:
//
//	source, _ := font.NewFontSource(goregular.TTF)
//	l := textbox.New(textbox.WithShaping(shaping.NewHarfBuzz(source)))
//
// Words that HarfBuzz shapes into a different number of glyphs than the
// segmenter (ligatures, decomposition) keep their segmenter positions.
package shaping

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textbox"
	"github.com/gogpu/textbox/font"
	"github.com/gogpu/textbox/internal/cache"
)

// HarfBuzz is a textbox.ShapingAdjuster backed by go-text's HarfBuzz port.
//
// HarfBuzz is safe for concurrent use. HarfbuzzShaper instances are pooled
// since they carry mutable buffers; the parsed font is shared.
type HarfBuzz struct {
	source   *font.FontSource
	language language.Language
	shapers  sync.Pool
}

var _ textbox.ShapingAdjuster = (*HarfBuzz)(nil)

// Option configures a HarfBuzz adjuster.
type Option func(*HarfBuzz)

// WithLanguage sets the BCP 47 language tag passed to the shaper.
// The default is "en".
func WithLanguage(tag string) Option {
	return func(h *HarfBuzz) {
		h.language = language.NewLanguage(tag)
	}
}

// NewHarfBuzz creates a shaping adjuster for text laid out with a provider
// over source.
func NewHarfBuzz(source *font.FontSource, opts ...Option) *HarfBuzz {
	h := &HarfBuzz{
		source:   source,
		language: language.NewLanguage("en"),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ShapingDeltas returns one delta per glyph of tokens. It returns nil, the
// identity, when the font cannot be loaded.
func (h *HarfBuzz) ShapingDeltas(tokens []textbox.Token, size float64) []textbox.Delta {
	words := make([]textbox.Word, 0, len(tokens))
	n := 0
	for _, tok := range tokens {
		if w, ok := tok.(textbox.Word); ok {
			words = append(words, w)
			n += len(w.Glyphs)
		}
	}
	if n == 0 {
		return nil
	}

	f, err := parsedFont(h.source)
	if err != nil {
		textbox.Logger().Warn("shaping: font unavailable, shaping skipped", "err", err)
		return nil
	}

	face := gtfont.NewFace(f)
	shaper := h.shapers.Get().(*shaping.HarfbuzzShaper)
	defer h.shapers.Put(shaper)

	deltas := make([]textbox.Delta, 0, n)
	for _, w := range words {
		deltas = append(deltas, h.wordDeltas(shaper, face, w, size)...)
	}
	return deltas
}

// wordDeltas shapes one word and compares the result with its segmented
// glyphs.
func (h *HarfBuzz) wordDeltas(shaper *shaping.HarfbuzzShaper, face *gtfont.Face, w textbox.Word, size float64) []textbox.Delta {
	deltas := make([]textbox.Delta, len(w.Glyphs))

	runes := []rune(w.Text)
	out := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  h.language,
	})

	if len(out.Glyphs) != len(w.Glyphs) {
		textbox.Logger().Debug("shaping: glyph count differs, word left unshaped",
			"word", w.Text, "segmented", len(w.Glyphs), "shaped", len(out.Glyphs))
		return deltas
	}

	var pen float64
	for i, g := range out.Glyphs {
		deltas[i] = textbox.Delta{
			X: pen + fixedToFloat(g.XOffset) - w.Glyphs[i].X,
			Y: -fixedToFloat(g.YOffset),
		}
		pen += fixedToFloat(g.Advance)
	}
	return deltas
}

// fontCacheCapacity is the number of parsed fonts kept per shard.
const fontCacheCapacity = 4

// fonts caches parsed go-text fonts by FontSource ID, least recently used
// first out. gtfont.Font is read-only and safe for concurrent use;
// gtfont.Face is not.
var fonts = cache.New[uint64, *gtfont.Font](fontCacheCapacity, cache.Uint64Hasher)

func parsedFont(source *font.FontSource) (*gtfont.Font, error) {
	id := source.ID()
	if f, ok := fonts.Get(id); ok {
		return f, nil
	}

	data := source.Data()
	if data == nil {
		return nil, font.ErrClosed
	}

	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	fonts.Set(id, face.Font)
	return face.Font, nil
}

// Forget drops the cached parsed font of source.
func Forget(source *font.FontSource) {
	fonts.Delete(source.ID())
}

// detectScript returns the script of the first rune with one.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

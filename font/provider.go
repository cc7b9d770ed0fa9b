package font

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/gogpu/textbox"
	"github.com/gogpu/textbox/internal/cache"
)

// Provider implements textbox.FontMetricsProvider over a FontSource.
// Glyph lookups are memoized per rune and size.
//
// Provider is safe for concurrent use.
type Provider struct {
	source     *FontSource
	id         uint64
	sizeFactor float64
	hinting    Hinting
	glyphs     *cache.Sharded[cache.RuneSizeKey, glyphEntry]
}

type glyphEntry struct {
	id      textbox.GlyphID
	advance float64
}

var _ textbox.FontMetricsProvider = (*Provider)(nil)

// NewProvider creates a metrics provider for source. Size factor, hinting
// and cache capacity come from the source's options.
func NewProvider(source *FontSource) *Provider {
	source.copyCheck()
	return &Provider{
		source:     source,
		id:         metricsID(source.id, source.config),
		sizeFactor: source.config.sizeFactor,
		hinting:    source.config.hinting,
		glyphs:     cache.New[cache.RuneSizeKey, glyphEntry](source.config.cacheLimit, cache.RuneSizeHasher),
	}
}

// LookupGlyph returns the glyph index and advance of r at size pixels per
// em. Characters the font lacks map to .notdef (0) with its advance.
func (p *Provider) LookupGlyph(r rune, size float64) (textbox.GlyphID, float64) {
	parsed, err := p.source.Parsed()
	if err != nil {
		textbox.Logger().Warn("font: lookup on closed source", "rune", string(r), "font", p.source.Name())
		return 0, 0
	}

	e := p.glyphs.GetOrCreate(cache.RuneSizeKey{Rune: r, Size: size}, func() glyphEntry {
		idx, ok := parsed.GlyphIndex(r)
		if !ok {
			textbox.Logger().Warn("font: missing glyph", "rune", string(r), "font", p.source.Name())
		}
		return glyphEntry{
			id:      textbox.GlyphID(idx),
			advance: parsed.GlyphAdvance(idx, size, p.hinting),
		}
	})
	return e.id, e.advance
}

// Kerning returns the kerning between two glyphs at size pixels per em.
func (p *Provider) Kerning(left, right textbox.GlyphID, size float64) float64 {
	parsed, err := p.source.Parsed()
	if err != nil {
		return 0
	}
	return parsed.Kern(uint16(left), uint16(right), size, p.hinting)
}

// VerticalMetrics returns ascent, descent and line gap at size pixels per em.
func (p *Provider) VerticalMetrics(size float64) textbox.VerticalMetrics {
	parsed, err := p.source.Parsed()
	if err != nil {
		return textbox.VerticalMetrics{}
	}
	m := parsed.Metrics(size, p.hinting)
	return textbox.VerticalMetrics{
		Ascent:  m.Ascent,
		Descent: m.Descent,
		LineGap: m.LineGap,
	}
}

// SizeFactor returns the factor configured with WithSizeFactor (default 1).
func (p *Provider) SizeFactor() float64 {
	return p.sizeFactor
}

// FontID identifies the metrics the provider returns: the font data plus
// the parser, hinting and size factor of its source. The layout cache uses
// it as part of its key.
func (p *Provider) FontID() uint64 {
	return p.id
}

// metricsID folds every source setting that changes glyph metrics into the
// data hash.
func metricsID(dataID uint64, cfg sourceConfig) uint64 {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:], dataID)
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(cfg.sizeFactor))
	buf[16] = byte(cfg.hinting)

	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(cfg.parserName))
	return h.Sum64()
}

// Source returns the FontSource the provider reads from.
func (p *Provider) Source() *FontSource {
	return p.source
}

// CacheStats reports the glyph lookup cache counters.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// CacheStats returns statistics of the glyph lookup cache.
func (p *Provider) CacheStats() CacheStats {
	s := p.glyphs.Stats()
	return CacheStats{Len: s.Len, Hits: s.Hits, Misses: s.Misses, Evictions: s.Evictions}
}

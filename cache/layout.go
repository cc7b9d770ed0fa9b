package cache

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"slices"
	"sync/atomic"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/textbox"
	icache "github.com/gogpu/textbox/internal/cache"
)

// FontIdentifier is implemented by providers that can name their font data.
// font.Provider implements it. Requests whose provider does not are laid out
// without caching.
type FontIdentifier interface {
	FontID() uint64
}

// LayoutKey identifies a layout result. Every request field that affects
// the result is part of the key.
type LayoutKey struct {
	// TextHash is the FNV-1a hash of the NFC-normalized text.
	TextHash uint64

	// FontID is the provider's font identifier.
	FontID uint64

	// SizeBits is the IEEE 754 bit pattern of the requested font size.
	SizeBits uint64

	// FactorBits is the bit pattern of the provider's size factor. Sources
	// built from the same data may differ in it.
	FactorBits uint64

	// Bounds are the bit patterns of X, Y, Width and Height.
	Bounds [4]uint64

	Style textbox.Style
}

// NewLayoutKey builds the key of req. ok is false when req.Font does not
// implement FontIdentifier.
func NewLayoutKey(req textbox.Request) (key LayoutKey, text string, ok bool) {
	id, ok := req.Font.(FontIdentifier)
	if !ok {
		return LayoutKey{}, "", false
	}

	text = norm.NFC.String(req.Text)
	return LayoutKey{
		TextHash:   hashString(text),
		FontID:     id.FontID(),
		SizeBits:   math.Float64bits(req.FontSize),
		FactorBits: math.Float64bits(req.Font.SizeFactor()),
		Bounds: [4]uint64{
			math.Float64bits(req.Bounds.X),
			math.Float64bits(req.Bounds.Y),
			math.Float64bits(req.Bounds.Width),
			math.Float64bits(req.Bounds.Height),
		},
		Style: req.Style,
	}, text, true
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// keyHash spreads keys over shards. Text, font and size are enough;
// the map compares whole keys.
func keyHash(k LayoutKey) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], k.TextHash)
	binary.LittleEndian.PutUint64(buf[8:], k.FontID)
	binary.LittleEndian.PutUint64(buf[16:], k.SizeBits)
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

type layoutEntry struct {
	// text guards against TextHash collisions.
	text   string
	result textbox.Result
}

// LayoutCache memoizes layout results of one Layouter. A text box that is
// redrawn every frame with unchanged input is laid out once.
//
// Results returned by Layout are copies; callers may modify them.
// LayoutCache is safe for concurrent use.
type LayoutCache struct {
	layouter *textbox.Layouter
	entries  *icache.Sharded[LayoutKey, layoutEntry]

	bypassed   atomic.Uint64
	collisions atomic.Uint64
}

// New creates a layout cache.
func New(opts ...Option) *LayoutCache {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &LayoutCache{
		layouter: cfg.layouter,
		entries:  icache.New[LayoutKey, layoutEntry](cfg.capacity, keyHash),
	}
}

// Layout returns the cached result for req, laying it out on a miss.
// Errors are returned as is and never cached.
func (c *LayoutCache) Layout(req textbox.Request) (*textbox.Result, error) {
	key, text, ok := NewLayoutKey(req)
	if !ok {
		c.bypassed.Add(1)
		return c.layouter.Layout(req)
	}

	if e, hit := c.entries.Get(key); hit {
		if e.text == text {
			return cloneResult(&e.result), nil
		}
		c.collisions.Add(1)
		textbox.Logger().Debug("cache: text hash collision", "hash", key.TextHash)
	}

	res, err := c.layouter.Layout(req)
	if err != nil {
		return nil, err
	}
	c.entries.Set(key, layoutEntry{text: text, result: *cloneResult(res)})
	return res, nil
}

// Clear drops every cached result.
func (c *LayoutCache) Clear() {
	c.entries.Clear()
}

// Len returns the number of cached results.
func (c *LayoutCache) Len() int {
	return c.entries.Len()
}

// Stats returns the cache counters.
func (c *LayoutCache) Stats() Stats {
	s := c.entries.Stats()
	return Stats{
		Len:        s.Len,
		Capacity:   s.Capacity,
		Hits:       s.Hits,
		Misses:     s.Misses,
		HitRate:    s.HitRate,
		Evictions:  s.Evictions,
		Bypassed:   c.bypassed.Load(),
		Collisions: c.collisions.Load(),
	}
}

// Stats contains layout cache statistics.
type Stats struct {
	// Len is the current number of cached results.
	Len int
	// Capacity is the total capacity across all shards.
	Capacity int
	// Hits and Misses count lookups of cacheable requests.
	Hits   uint64
	Misses uint64
	// HitRate is Hits / (Hits + Misses).
	HitRate float64
	// Evictions is the number of results dropped to make room.
	Evictions uint64
	// Bypassed counts requests whose provider has no FontID.
	Bypassed uint64
	// Collisions counts hash hits whose text differed.
	Collisions uint64
}

func cloneResult(r *textbox.Result) *textbox.Result {
	out := *r
	out.Glyphs = slices.Clone(r.Glyphs)
	if out.Glyphs == nil {
		out.Glyphs = []textbox.PositionedGlyph{}
	}
	return &out
}

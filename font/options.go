package font

// PointsToPixels converts typographic points to pixels at 96 DPI.
// Pass it to WithSizeFactor when font sizes are given in points.
const PointsToPixels = 96.0 / 72.0

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	parserName string
	sizeFactor float64
	hinting    Hinting
	cacheLimit int
}

func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
		sizeFactor: 1,
		hinting:    HintingNone,
		cacheLimit: 256,
	}
}

// WithParser selects a parser registered with RegisterParser.
// The default is "ximage".
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithSizeFactor sets the factor providers report from SizeFactor. Layout
// multiplies requested font sizes by it before querying metrics.
// Non-positive values are ignored.
func WithSizeFactor(f float64) SourceOption {
	return func(c *sourceConfig) {
		if f > 0 {
			c.sizeFactor = f
		}
	}
}

// WithHinting sets the hinting used for advances, kerning and metrics.
func WithHinting(h Hinting) SourceOption {
	return func(c *sourceConfig) {
		c.hinting = h
	}
}

// WithCacheLimit sets the per-shard capacity of a provider's glyph cache.
// Values <= 0 select the cache default.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

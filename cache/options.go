package cache

import "github.com/gogpu/textbox"

// DefaultCapacity is the default number of results kept per shard.
const DefaultCapacity = 64

// Option configures a LayoutCache.
type Option func(*config)

type config struct {
	capacity int
	layouter *textbox.Layouter
}

func defaultConfig() config {
	return config{
		capacity: DefaultCapacity,
		layouter: textbox.New(),
	}
}

// WithCapacity sets the number of results kept per shard. The cache has 16
// shards. Values <= 0 select DefaultCapacity.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultCapacity
		}
		c.capacity = n
	}
}

// WithLayouter sets the Layouter used on cache misses. A nil Layouter
// selects textbox.New().
func WithLayouter(l *textbox.Layouter) Option {
	return func(c *config) {
		if l == nil {
			l = textbox.New()
		}
		c.layouter = l
	}
}

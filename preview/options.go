package preview

import (
	"image/color"

	"github.com/tdewolff/canvas"
)

// DefaultMargin is the space around the drawing, in pixels.
const DefaultMargin = 16

// Option configures a Renderer.
type Option func(*config)

type config struct {
	margin      float64
	textColor   color.Color
	boundsColor color.Color
	trackColor  color.Color
	thumbColor  color.Color
	showContent bool
}

func defaultConfig() config {
	return config{
		margin:      DefaultMargin,
		textColor:   canvas.Black,
		boundsColor: canvas.Hex("#3070d0"),
		trackColor:  canvas.Hex("#e8e8e8"),
		thumbColor:  canvas.Hex("#909090"),
	}
}

// WithMargin sets the page margin in pixels. Negative values are ignored.
func WithMargin(px float64) Option {
	return func(c *config) {
		if px >= 0 {
			c.margin = px
		}
	}
}

// WithTextColor sets the glyph color.
func WithTextColor(col color.Color) Option {
	return func(c *config) {
		if col != nil {
			c.textColor = col
		}
	}
}

// WithContentArea outlines the area left after scrollbar reservation.
func WithContentArea(show bool) Option {
	return func(c *config) {
		c.showContent = show
	}
}

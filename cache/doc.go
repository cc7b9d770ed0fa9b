// Package cache memoizes text box layouts.
//
// The layout core keeps no state between calls. Interfaces that redraw the
// same text boxes every frame wrap a Layouter in a LayoutCache:
//
//	lc := cache.New(cache.WithLayouter(textbox.New()), cache.WithCapacity(128))
//	res, err := lc.Layout(req)
//
// Results are keyed by the NFC text, the provider's FontID, the font size,
// the bounds and the style. Providers without a FontID method bypass the
// cache.
package cache

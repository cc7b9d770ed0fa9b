// Package textbox lays out a run of text inside a rectangle.
//
// # Overview
//
// Given a string, a font metrics provider, a target rectangle and a style,
// textbox produces a flat sequence of positioned glyphs ready for
// rasterization, plus per-axis overflow feedback that a scrollbar
// presentation layer can use to size itself. Rendering, font parsing and
// scrollbar styling are left to the caller.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textbox"
//	    "github.com/gogpu/textbox/font"
//	)
//
//	source, err := font.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer source.Close()
//
//	res, err := textbox.Layout(textbox.Request{
//	    Bounds:   textbox.Rect{X: 10, Y: 10, Width: 300, Height: 120},
//	    Text:     "Hello, World!",
//	    Font:     font.NewProvider(source),
//	    FontSize: 16,
//	    Style:    textbox.Style{HorizontalAlign: textbox.AlignCenter},
//	})
//
// # Pipeline
//
// Every call runs the same stages, each a pure function of the previous
// stage's output:
//
//   - Segment: NFC-normalize the text and split it into words, tabs and line breaks
//   - Shaping adjustment: per-glyph corrections (identity unless configured)
//   - Overflow pass 1: estimate per-axis overflow against the full rectangle
//   - Overflow pass 2: reserve scrollbar space for overflowing axes and re-estimate
//   - Placement: greedy left-aligned line breaking
//   - Justification adjustment: per-glyph corrections (identity unless configured)
//   - Horizontal and vertical alignment
//   - Origin translation into destination space
//
// # Coordinate System
//
// Destination space:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down; glyph Y is the baseline position
//
// # Caching
//
// The core keeps no state between calls. Callers that lay out the same text
// every frame should wrap a [Layouter] with the cache package.
package textbox

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)

package textbox

import (
	"math"
)

// Request is the input of one layout call.
type Request struct {
	// Bounds is the destination rectangle. Its origin is added to every
	// glyph after layout.
	Bounds Rect

	// Text is the text to lay out. It is NFC-normalized before segmentation.
	Text string

	// Font supplies glyph metrics.
	Font FontMetricsProvider

	// FontSize is the requested size; it is multiplied by Font.SizeFactor().
	FontSize float64

	Style Style
}

// Result is the output of one layout call.
type Result struct {
	// Glyphs are positioned in destination space, in text order.
	Glyphs []PositionedGlyph

	// Overflow is the post-reservation overflow per axis. A presentation
	// layer uses it to size and place scrollbars.
	Overflow OverflowPass2

	// Size is the layout size after scrollbar space was reserved.
	Size Size
}

// Layouter runs the layout pipeline with a fixed set of adjusters.
// A Layouter is immutable and safe for concurrent use.
type Layouter struct {
	shaping       ShapingAdjuster
	justification JustificationAdjuster
	tabSize       int
}

// New creates a Layouter. Without options it uses identity adjusters and
// DefaultTabSize.
func New(opts ...Option) *Layouter {
	l := &Layouter{
		shaping:       IdentityShaping,
		justification: IdentityJustification,
		tabSize:       DefaultTabSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLayouter = New()

// Layout lays out req with the default Layouter.
func Layout(req Request) (*Result, error) {
	return defaultLayouter.Layout(req)
}

// Layout positions the glyphs of req.Text inside req.Bounds.
//
// Errors wrap ErrMalformedLayout for invalid input or adjuster output and
// ErrNilFont when req.Font is nil.
func (l *Layouter) Layout(req Request) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	bounds := req.Bounds.Size()
	if req.Bounds.Empty() || req.Text == "" {
		return emptyResult(bounds), nil
	}

	size := req.FontSize * req.Font.SizeFactor()
	m := NewMetrics(req.Font, size, req.Style.LineHeight, l.tabSize)

	tokens := Segment(req.Text, req.Font, size)
	if countGlyphs(tokens) == 0 {
		return emptyResult(bounds), nil
	}

	shapingDeltas := l.shaping.ShapingDeltas(tokens, size)

	style := req.Style
	pass1 := estimatePass1(tokens, bounds, m, style.Overflow)
	Logger().Debug("textbox: overflow pass 1", "result", pass1)

	effective, pass2 := estimatePass2(tokens, bounds, m, style.Overflow, style.Scrollbar, pass1)
	Logger().Debug("textbox: overflow pass 2", "result", pass2, "width", effective.Width, "height", effective.Height)

	bounded := !style.Overflow.AllowsHorizontalOverflow()
	glyphs, lines := placeLeftAligned(tokens, effective.Width, bounded, m)

	if err := applyDeltas("shaping", glyphs, shapingDeltas); err != nil {
		return nil, err
	}
	if err := applyDeltas("justification", glyphs, l.justification.JustificationDeltas(glyphs, lines)); err != nil {
		return nil, err
	}
	if err := alignHorizontal(glyphs, lines, style.HorizontalAlign); err != nil {
		return nil, err
	}
	alignVertical(glyphs, pass2.Vertical, style.VerticalAlign)
	translate(glyphs, req.Bounds.Origin())

	return &Result{
		Glyphs:   glyphs,
		Overflow: pass2,
		Size:     effective,
	}, nil
}

// emptyResult is the result for input that produces no glyphs.
func emptyResult(bounds Size) *Result {
	return &Result{
		Glyphs: []PositionedGlyph{},
		Overflow: OverflowPass2{
			Horizontal: InBounds(bounds.Width),
			Vertical:   InBounds(bounds.Height),
		},
		Size: bounds,
	}
}

func (r Request) validate() error {
	if r.Font == nil {
		return ErrNilFont
	}

	b := r.Bounds
	if !finite(b.X) || !finite(b.Y) {
		return malformed("request", "non-finite origin (%g, %g)", b.X, b.Y)
	}
	if !nonNegative(b.Width) || !nonNegative(b.Height) {
		return malformed("request", "invalid bounds size %gx%g", b.Width, b.Height)
	}
	if !nonNegative(r.FontSize) {
		return malformed("request", "invalid font size %g", r.FontSize)
	}
	if !nonNegative(r.Style.LineHeight) {
		return malformed("request", "invalid line height %g", r.Style.LineHeight)
	}
	if !nonNegative(r.Style.Scrollbar.Thickness) {
		return malformed("request", "invalid scrollbar thickness %g", r.Style.Scrollbar.Thickness)
	}
	if f := r.Font.SizeFactor(); !finite(f) || f <= 0 {
		return malformed("request", "invalid font size factor %g", f)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return finite(v) && v >= 0
}

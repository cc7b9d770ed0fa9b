package textbox

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index in a font, as returned by a FontMetricsProvider.
type GlyphID uint16

// Point is a position in layout or destination space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is the destination rectangle text is laid out into.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// HorizontalAlign specifies how each line is placed within the layout width.
type HorizontalAlign int

const (
	// AlignLeft aligns lines to the left edge (default).
	AlignLeft HorizontalAlign = iota
	// AlignCenter centers each line.
	AlignCenter
	// AlignRight aligns lines to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a HorizontalAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// factor is the share of a line's trailing slack moved in front of it.
func (a HorizontalAlign) factor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1.0
	default:
		return 0
	}
}

// VerticalAlign specifies how the block of lines is placed within the layout height.
type VerticalAlign int

const (
	// AlignTop places the first line at the top edge (default).
	AlignTop VerticalAlign = iota
	// AlignMiddle centers the block vertically.
	AlignMiddle
	// AlignBottom places the last baseline at the bottom edge.
	AlignBottom
)

// String returns the string representation of the alignment.
func (a VerticalAlign) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

func (a VerticalAlign) factor() float64 {
	switch a {
	case AlignMiddle:
		return 0.5
	case AlignBottom:
		return 1.0
	default:
		return 0
	}
}

// OverflowBehavior is the overflow policy of one axis.
type OverflowBehavior int

const (
	// OverflowClip keeps content inside the rectangle. On the horizontal
	// axis this means lines wrap at the layout width (default).
	OverflowClip OverflowBehavior = iota
	// OverflowVisible lets content extend past the rectangle edge.
	OverflowVisible
	// OverflowScroll lets content extend past the edge, reachable by scrolling.
	OverflowScroll
)

// String returns the string representation of the behavior.
func (b OverflowBehavior) String() string {
	switch b {
	case OverflowClip:
		return "Clip"
	case OverflowVisible:
		return "Visible"
	case OverflowScroll:
		return "Scroll"
	default:
		return unknownStr
	}
}

// Overflow holds the per-axis overflow policy.
type Overflow struct {
	Horizontal OverflowBehavior
	Vertical   OverflowBehavior
}

// AllowsHorizontalOverflow reports whether lines may run past the right
// edge. When true, lines only break on explicit line breaks.
func (o Overflow) AllowsHorizontalOverflow() bool {
	return o.Horizontal != OverflowClip
}

// AllowsVerticalOverflow reports whether lines may run past the bottom edge.
func (o Overflow) AllowsVerticalOverflow() bool {
	return o.Vertical != OverflowClip
}

// Scrollbar describes the space reserved for a scrollbar.
// Only Thickness participates in layout; Padding is carried for the
// presentation layer.
type Scrollbar struct {
	// Thickness is the width of a vertical bar or the height of a horizontal one.
	Thickness float64
	// Padding is the inset of the bar inside its track.
	Padding float64
}

// Style holds the layout parameters of a text box.
type Style struct {
	HorizontalAlign HorizontalAlign
	VerticalAlign   VerticalAlign

	// LineHeight is a multiplier of the font size. Zero means 1.0.
	LineHeight float64

	Overflow  Overflow
	Scrollbar Scrollbar
}

// PositionedGlyph is a glyph placed in destination space.
type PositionedGlyph struct {
	// ID is the glyph index returned by the font provider.
	ID GlyphID
	// Rune is the character the glyph was looked up for.
	Rune rune
	// X is the left edge of the glyph's advance box.
	X float64
	// Y is the baseline position.
	Y float64
}

package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/gogpu/textbox"
	"github.com/gogpu/textbox/font"
)

const (
	mmPerPx = 25.4 / 96
	ptPerPx = 72.0 / 96

	boundsStroke = 0.2
)

var (
	// ErrNilSource is returned by New when no font source is given.
	ErrNilSource = errors.New("preview: nil font source")

	// ErrNilResult is returned by Render when there is no result to draw.
	ErrNilResult = errors.New("preview: nil layout result")
)

// Renderer draws layout results with github.com/tdewolff/canvas.
// A Renderer is safe for sequential reuse; concurrent Render calls share
// the font family and must be serialized by the caller.
type Renderer struct {
	family *canvas.FontFamily
	cfg    config
}

// New loads the font of src into a canvas font family.
func New(src *font.FontSource, opts ...Option) (*Renderer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	family := canvas.NewFontFamily(src.Name())
	if err := family.LoadFont(src.Data(), 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("preview: load font %q: %w", src.Name(), err)
	}
	return &Renderer{family: family, cfg: cfg}, nil
}

// RenderPDF returns the PDF document for res.
func (r *Renderer) RenderPDF(req textbox.Request, res *textbox.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, req, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes a one-page PDF for res to w. req must be the request res
// was computed from.
func (r *Renderer) Render(w io.Writer, req textbox.Request, res *textbox.Result) error {
	if res == nil {
		return ErrNilResult
	}
	pageW, pageH := r.pageSize(req, res)

	writer := pdf.New(w, pageW*mmPerPx, pageH*mmPerPx, nil)
	writer.SetInfo("textbox preview", "", "", "", "textbox")

	c := canvas.New(pageW*mmPerPx, pageH*mmPerPx)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	r.drawBounds(ctx, req.Bounds)
	if r.cfg.showContent {
		r.drawContentArea(ctx, req.Bounds.Origin(), res.Size)
	}
	r.drawScrollbars(ctx, req, res)
	r.drawGlyphs(ctx, req, res.Glyphs)

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("preview: write PDF: %w", err)
	}
	textbox.Logger().Debug("preview: rendered",
		"glyphs", len(res.Glyphs),
		"width_px", pageW,
		"height_px", pageH,
	)
	return nil
}

// pageSize covers the bounds and every glyph, plus the margin on the far
// sides. The page origin stays at the layout origin.
func (r *Renderer) pageSize(req textbox.Request, res *textbox.Result) (float64, float64) {
	maxX := req.Bounds.X + req.Bounds.Width
	maxY := req.Bounds.Y + req.Bounds.Height
	em := r.glyphSize(req)
	for _, g := range res.Glyphs {
		maxX = math.Max(maxX, g.X+em)
		maxY = math.Max(maxY, g.Y+em/2)
	}
	return math.Max(maxX, 1) + r.cfg.margin, math.Max(maxY, 1) + r.cfg.margin
}

// glyphSize is the rendered font size in pixels.
func (r *Renderer) glyphSize(req textbox.Request) float64 {
	size := req.FontSize
	if req.Font != nil {
		size *= req.Font.SizeFactor()
	}
	return size
}

func (r *Renderer) drawBounds(ctx *canvas.Context, b textbox.Rect) {
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(r.cfg.boundsColor)
	ctx.SetStrokeWidth(boundsStroke)
	ctx.DrawPath(b.X*mmPerPx, b.Y*mmPerPx, canvas.Rectangle(b.Width*mmPerPx, b.Height*mmPerPx))
}

func (r *Renderer) drawContentArea(ctx *canvas.Context, origin textbox.Point, size textbox.Size) {
	ctx.SetFillColor(color.RGBA{})
	ctx.SetStrokeColor(r.cfg.trackColor)
	ctx.SetStrokeWidth(boundsStroke)
	ctx.DrawPath(origin.X*mmPerPx, origin.Y*mmPerPx, canvas.Rectangle(size.Width*mmPerPx, size.Height*mmPerPx))
}

func (r *Renderer) drawGlyphs(ctx *canvas.Context, req textbox.Request, glyphs []textbox.PositionedGlyph) {
	size := r.glyphSize(req)
	if size <= 0 {
		return
	}
	face := r.family.Face(size*ptPerPx, r.cfg.textColor, canvas.FontRegular, canvas.FontNormal)
	for _, g := range glyphs {
		if unicode.IsSpace(g.Rune) || unicode.IsControl(g.Rune) {
			continue
		}
		line := canvas.NewTextLine(face, string(g.Rune), canvas.Left)
		ctx.DrawText(g.X*mmPerPx, g.Y*mmPerPx, line)
	}
}

// drawScrollbars draws a track and thumb in the space the layout reserved
// for each axis under the Scroll policy.
func (r *Renderer) drawScrollbars(ctx *canvas.Context, req textbox.Request, res *textbox.Result) {
	bar := req.Style.Scrollbar
	if bar.Thickness <= 0 {
		return
	}
	b := req.Bounds
	policy := req.Style.Overflow

	// A vertical bar takes width, a horizontal one takes height.
	if res.Size.Width < b.Width && policy.Vertical == textbox.OverflowScroll {
		track := scrollTrack{
			x: b.X + res.Size.Width, y: b.Y,
			length: res.Size.Height, thickness: b.Width - res.Size.Width,
			padding: bar.Padding, vertical: true,
		}
		r.drawScrollbar(ctx, track, res.Size.Height, res.Overflow.Vertical.Excess())
	}
	if res.Size.Height < b.Height && policy.Horizontal == textbox.OverflowScroll {
		track := scrollTrack{
			x: b.X, y: b.Y + res.Size.Height,
			length: res.Size.Width, thickness: b.Height - res.Size.Height,
			padding: bar.Padding,
		}
		r.drawScrollbar(ctx, track, res.Size.Width, res.Overflow.Horizontal.Excess())
	}
}

type scrollTrack struct {
	x, y      float64
	length    float64
	thickness float64
	padding   float64
	vertical  bool
}

// thumb returns the thumb rectangle for a viewport of visible units over
// visible+excess units of content, scrolled to the start.
func (t scrollTrack) thumb(visible, excess float64) textbox.Rect {
	inner := math.Max(t.length-2*t.padding, 0)
	span := inner
	if total := visible + excess; total > 0 {
		span = inner * visible / total
	}
	across := math.Max(t.thickness-2*t.padding, 0)
	if t.vertical {
		return textbox.Rect{X: t.x + t.padding, Y: t.y + t.padding, Width: across, Height: span}
	}
	return textbox.Rect{X: t.x + t.padding, Y: t.y + t.padding, Width: span, Height: across}
}

func (t scrollTrack) rect() textbox.Rect {
	if t.vertical {
		return textbox.Rect{X: t.x, Y: t.y, Width: t.thickness, Height: t.length}
	}
	return textbox.Rect{X: t.x, Y: t.y, Width: t.length, Height: t.thickness}
}

func (r *Renderer) drawScrollbar(ctx *canvas.Context, t scrollTrack, visible, excess float64) {
	ctx.SetStrokeColor(color.RGBA{})
	ctx.SetStrokeWidth(0)

	ctx.SetFillColor(r.cfg.trackColor)
	fillRect(ctx, t.rect())

	ctx.SetFillColor(r.cfg.thumbColor)
	fillRect(ctx, t.thumb(visible, excess))
}

func fillRect(ctx *canvas.Context, rc textbox.Rect) {
	if rc.Width <= 0 || rc.Height <= 0 {
		return
	}
	ctx.DrawPath(rc.X*mmPerPx, rc.Y*mmPerPx, canvas.Rectangle(rc.Width*mmPerPx, rc.Height*mmPerPx))
}

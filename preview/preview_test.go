package preview

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textbox"
	"github.com/gogpu/textbox/font"
)

func newSource(t *testing.T) *font.FontSource {
	t.Helper()
	src, err := font.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	t.Cleanup(func() { _ = src.Close() })
	return src
}

func layout(t *testing.T, src *font.FontSource, text string, bounds textbox.Rect, st textbox.Style) (textbox.Request, *textbox.Result) {
	t.Helper()
	req := textbox.Request{
		Bounds:   bounds,
		Text:     text,
		Font:     font.NewProvider(src),
		FontSize: 14,
		Style:    st,
	}
	res, err := textbox.Layout(req)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	return req, res
}

func TestNewNilSource(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("New(nil) error = %v, want ErrNilSource", err)
	}
}

func TestRenderPDF(t *testing.T) {
	src := newSource(t)
	r, err := New(src, WithContentArea(true))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	req, res := layout(t, src, "Hello World", textbox.Rect{X: 10, Y: 10, Width: 200, Height: 60}, textbox.Style{})
	data, err := r.RenderPDF(req, res)
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", data[:min(len(data), 16)])
	}
}

func TestRenderScrollingBox(t *testing.T) {
	src := newSource(t)
	r, err := New(src, WithMargin(0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	st := textbox.Style{
		Overflow:  textbox.Overflow{Vertical: textbox.OverflowScroll},
		Scrollbar: textbox.Scrollbar{Thickness: 6, Padding: 1},
	}
	req, res := layout(t, src, "one two three four five six seven eight nine ten", textbox.Rect{Width: 60, Height: 20}, st)
	if res.Size.Width >= req.Bounds.Width {
		t.Fatalf("Size = %+v, want width reserved for a scrollbar", res.Size)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, req, res); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Render() wrote nothing")
	}
}

func TestRenderNilResult(t *testing.T) {
	r, err := New(newSource(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := r.Render(&bytes.Buffer{}, textbox.Request{}, nil); !errors.Is(err, ErrNilResult) {
		t.Errorf("Render(nil) error = %v, want ErrNilResult", err)
	}
}

func TestRenderEmptyResult(t *testing.T) {
	src := newSource(t)
	r, err := New(src)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	req, res := layout(t, src, "", textbox.Rect{Width: 50, Height: 20}, textbox.Style{})
	if _, err := r.RenderPDF(req, res); err != nil {
		t.Errorf("RenderPDF() error = %v", err)
	}
}

func TestPageSize(t *testing.T) {
	r := &Renderer{cfg: defaultConfig()}
	req := textbox.Request{Bounds: textbox.Rect{X: 5, Y: 5, Width: 100, Height: 40}, FontSize: 10}

	w, h := r.pageSize(req, &textbox.Result{})
	if w != 105+DefaultMargin || h != 45+DefaultMargin {
		t.Errorf("pageSize = %v x %v, want bounds plus margin", w, h)
	}

	res := &textbox.Result{Glyphs: []textbox.PositionedGlyph{{X: 300, Y: 20}}}
	w, _ = r.pageSize(req, res)
	if w != 310+DefaultMargin {
		t.Errorf("pageSize width = %v, want glyph extent plus margin", w)
	}
}

func TestScrollThumb(t *testing.T) {
	tests := []struct {
		name            string
		track           scrollTrack
		visible, excess float64
		want            textbox.Rect
	}{
		{
			name:    "vertical half",
			track:   scrollTrack{x: 90, length: 100, thickness: 10, vertical: true},
			visible: 50, excess: 50,
			want:    textbox.Rect{X: 90, Width: 10, Height: 50},
		},
		{
			name:    "horizontal padded",
			track:   scrollTrack{y: 40, length: 104, thickness: 6, padding: 2},
			visible: 75, excess: 25,
			want:    textbox.Rect{X: 2, Y: 42, Width: 75, Height: 2},
		},
		{
			name:    "no excess fills the track",
			track:   scrollTrack{length: 30, thickness: 4, vertical: true},
			visible: 30,
			want:    textbox.Rect{Width: 4, Height: 30},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.thumb(tt.visible, tt.excess); got != tt.want {
				t.Errorf("thumb() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

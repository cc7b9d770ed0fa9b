// Command textbox lays out text in a rectangle and prints the positioned
// glyphs as JSON.
//
//	echo "Hello World" | textbox -width 120 -height 40 -style "text-align: center"
//
// With -pdf the layout is also drawn into a PDF file.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textbox"
	"github.com/gogpu/textbox/font"
	"github.com/gogpu/textbox/preview"
	"github.com/gogpu/textbox/shaping"
	"github.com/gogpu/textbox/style"
)

type config struct {
	fontPath  string
	size      float64
	points    bool
	bounds    textbox.Rect
	style     string
	text      string
	shape     bool
	language  string
	pdfPath   string
	verbose   bool
	hasText   bool
	outputRaw io.Writer
}

type glyphJSON struct {
	ID   uint16  `json:"id"`
	Rune string  `json:"rune"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type resultJSON struct {
	Glyphs     []glyphJSON `json:"glyphs"`
	Horizontal string      `json:"horizontal"`
	Vertical   string      `json:"vertical"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
}

func main() {
	var cfg config
	flag.StringVar(&cfg.fontPath, "font", "", "TrueType/OpenType font file (default Go Regular)")
	flag.Float64Var(&cfg.size, "size", 16, "font size")
	flag.BoolVar(&cfg.points, "points", false, "interpret font sizes as points")
	flag.Float64Var(&cfg.bounds.X, "x", 0, "layout origin x")
	flag.Float64Var(&cfg.bounds.Y, "y", 0, "layout origin y")
	flag.Float64Var(&cfg.bounds.Width, "width", 200, "layout width")
	flag.Float64Var(&cfg.bounds.Height, "height", 100, "layout height")
	flag.StringVar(&cfg.style, "style", "", "CSS-like style declarations")
	flag.StringVar(&cfg.text, "text", "", "text to lay out (default: read stdin)")
	flag.BoolVar(&cfg.shape, "shaping", false, "apply HarfBuzz shaping adjustments")
	flag.StringVar(&cfg.language, "lang", "", "BCP 47 language for shaping")
	flag.StringVar(&cfg.pdfPath, "pdf", "", "write a PDF preview to this file")
	flag.BoolVar(&cfg.verbose, "v", false, "log layout passes to stderr")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "text" {
			cfg.hasText = true
		}
	})
	cfg.outputRaw = os.Stdout

	if err := run(cfg, os.Stdin); err != nil {
		log.Fatalf("textbox: %v", err)
	}
}

func run(cfg config, stdin io.Reader) error {
	if cfg.verbose {
		textbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	props, err := style.Decode(cfg.style)
	if err != nil {
		return err
	}

	var sourceOpts []font.SourceOption
	if cfg.points {
		sourceOpts = append(sourceOpts, font.WithSizeFactor(font.PointsToPixels))
	}
	src, err := loadFont(cfg.fontPath, sourceOpts...)
	if err != nil {
		return err
	}
	defer src.Close()

	text := cfg.text
	if !cfg.hasText {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}

	opts := props.Options()
	if cfg.shape {
		var shapeOpts []shaping.Option
		if cfg.language != "" {
			shapeOpts = append(shapeOpts, shaping.WithLanguage(cfg.language))
		}
		opts = append(opts, textbox.WithShaping(shaping.NewHarfBuzz(src, shapeOpts...)))
	}

	size := cfg.size
	if props.FontSize > 0 {
		size = props.FontSize
	}
	req := textbox.Request{
		Bounds:   cfg.bounds,
		Text:     text,
		Font:     font.NewProvider(src),
		FontSize: size,
		Style:    props.Style,
	}
	res, err := textbox.New(opts...).Layout(req)
	if err != nil {
		return err
	}

	if err := writeJSON(cfg.outputRaw, res); err != nil {
		return err
	}
	if cfg.pdfPath != "" {
		return writePDF(cfg.pdfPath, src, req, res)
	}
	return nil
}

func loadFont(path string, opts ...font.SourceOption) (*font.FontSource, error) {
	if path == "" {
		return font.NewFontSource(goregular.TTF, opts...)
	}
	return font.NewFontSourceFromFile(path, opts...)
}

func writeJSON(w io.Writer, res *textbox.Result) error {
	out := resultJSON{
		Glyphs:     make([]glyphJSON, len(res.Glyphs)),
		Horizontal: res.Overflow.Horizontal.String(),
		Vertical:   res.Overflow.Vertical.String(),
		Width:      res.Size.Width,
		Height:     res.Size.Height,
	}
	for i, g := range res.Glyphs {
		out.Glyphs[i] = glyphJSON{ID: uint16(g.ID), Rune: string(g.Rune), X: g.X, Y: g.Y}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writePDF(path string, src *font.FontSource, req textbox.Request, res *textbox.Result) error {
	r, err := preview.New(src)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.Render(f, req, res); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package style

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/textbox"
)

// Sentinel errors for the style package.
var (
	// ErrUnknownProperty is returned for a property name the resolver does
	// not know.
	ErrUnknownProperty = errors.New("style: unknown property")

	// ErrInvalidValue is returned when a value does not fit its property.
	ErrInvalidValue = errors.New("style: invalid value")
)

// DeclarationError reports the declaration a resolver error came from.
type DeclarationError struct {
	Pos      lexer.Position
	Property string
	Value    string
	Err      error
}

func (e *DeclarationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("style: %s: %s: %v", e.Pos, e.Property, e.Err)
	}
	return fmt.Sprintf("style: %s: %s: %q: %v", e.Pos, e.Property, e.Value, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

// Properties is the resolved form of a Sheet.
type Properties struct {
	Style textbox.Style

	// FontSize is in pixels; 0 when the sheet does not set it.
	FontSize float64

	// TabSize is in spaces; 0 when the sheet does not set it.
	TabSize int
}

// Options returns the Layouter options the properties ask for.
func (p Properties) Options() []textbox.Option {
	var opts []textbox.Option
	if p.TabSize > 0 {
		opts = append(opts, textbox.WithTabSize(p.TabSize))
	}
	return opts
}

// Decode parses and resolves src over the zero Style.
func Decode(src string) (Properties, error) {
	sheet, err := ParseString(src)
	if err != nil {
		return Properties{}, err
	}
	return sheet.Resolve(textbox.Style{})
}

// Resolve applies the declarations in order on top of base. A later
// declaration of the same property wins.
func (s *Sheet) Resolve(base textbox.Style) (Properties, error) {
	p := Properties{Style: base}
	for _, d := range s.Declarations {
		if err := p.apply(d); err != nil {
			return Properties{}, err
		}
	}
	return p, nil
}

func (p *Properties) apply(d *Declaration) error {
	name := strings.ToLower(d.Property)
	fail := func(v *Value, err error) error {
		return &DeclarationError{Pos: d.Pos, Property: name, Value: v.String(), Err: err}
	}

	setter, ok := properties[name]
	if !ok {
		return &DeclarationError{Pos: d.Pos, Property: name, Err: ErrUnknownProperty}
	}
	if len(d.Values) > setter.maxValues {
		return fail(d.Values[setter.maxValues], fmt.Errorf("%w: too many values", ErrInvalidValue))
	}
	for i, v := range d.Values {
		if err := setter.set(p, i, len(d.Values), v); err != nil {
			return fail(v, err)
		}
	}
	return nil
}

type property struct {
	maxValues int
	// set applies the value at index i of n values.
	set func(p *Properties, i, n int, v *Value) error
}

var properties = map[string]property{
	"text-align": {1, func(p *Properties, _, _ int, v *Value) error {
		a, err := horizontalAlign(v)
		p.Style.HorizontalAlign = a
		return err
	}},
	"vertical-align": {1, setVerticalAlign},
	"align-items":    {1, setVerticalAlign},
	"line-height": {1, func(p *Properties, _, _ int, v *Value) error {
		lh, err := lineHeight(v)
		p.Style.LineHeight = lh
		return err
	}},
	"font-size": {1, func(p *Properties, _, _ int, v *Value) error {
		size, err := length(v)
		if err == nil && size == 0 {
			err = fmt.Errorf("%w: font size must be positive", ErrInvalidValue)
		}
		p.FontSize = size
		return err
	}},
	"overflow": {2, func(p *Properties, i, n int, v *Value) error {
		b, err := overflow(v)
		if err != nil {
			return err
		}
		// One value sets both axes; two set x then y.
		if i == 0 {
			p.Style.Overflow.Horizontal = b
		}
		if i == 1 || n == 1 {
			p.Style.Overflow.Vertical = b
		}
		return nil
	}},
	"overflow-x": {1, func(p *Properties, _, _ int, v *Value) error {
		b, err := overflow(v)
		p.Style.Overflow.Horizontal = b
		return err
	}},
	"overflow-y": {1, func(p *Properties, _, _ int, v *Value) error {
		b, err := overflow(v)
		p.Style.Overflow.Vertical = b
		return err
	}},
	"scrollbar-width": {1, func(p *Properties, _, _ int, v *Value) error {
		w, err := length(v)
		p.Style.Scrollbar.Thickness = w
		return err
	}},
	"scrollbar-padding": {1, func(p *Properties, _, _ int, v *Value) error {
		w, err := length(v)
		p.Style.Scrollbar.Padding = w
		return err
	}},
	"tab-size": {1, func(p *Properties, _, _ int, v *Value) error {
		n, unit, err := number(v)
		if err != nil {
			return err
		}
		if unit != "" || n < 1 || n != math.Trunc(n) {
			return fmt.Errorf("%w: tab size must be a positive integer", ErrInvalidValue)
		}
		p.TabSize = int(n)
		return nil
	}},
}

func setVerticalAlign(p *Properties, _, _ int, v *Value) error {
	a, err := verticalAlign(v)
	p.Style.VerticalAlign = a
	return err
}

func keyword(v *Value) (string, error) {
	if v.Keyword == nil {
		return "", fmt.Errorf("%w: keyword expected", ErrInvalidValue)
	}
	return strings.ToLower(*v.Keyword), nil
}

func horizontalAlign(v *Value) (textbox.HorizontalAlign, error) {
	k, err := keyword(v)
	if err != nil {
		return textbox.AlignLeft, err
	}
	switch k {
	case "left", "start":
		return textbox.AlignLeft, nil
	case "center":
		return textbox.AlignCenter, nil
	case "right", "end":
		return textbox.AlignRight, nil
	}
	return textbox.AlignLeft, ErrInvalidValue
}

func verticalAlign(v *Value) (textbox.VerticalAlign, error) {
	k, err := keyword(v)
	if err != nil {
		return textbox.AlignTop, err
	}
	switch k {
	case "top", "start", "flex-start":
		return textbox.AlignTop, nil
	case "middle", "center":
		return textbox.AlignMiddle, nil
	case "bottom", "end", "flex-end":
		return textbox.AlignBottom, nil
	}
	return textbox.AlignTop, ErrInvalidValue
}

func overflow(v *Value) (textbox.OverflowBehavior, error) {
	k, err := keyword(v)
	if err != nil {
		return textbox.OverflowClip, err
	}
	switch k {
	case "visible":
		return textbox.OverflowVisible, nil
	case "hidden", "clip":
		return textbox.OverflowClip, nil
	case "scroll", "auto":
		return textbox.OverflowScroll, nil
	}
	return textbox.OverflowClip, ErrInvalidValue
}

// lineHeight accepts a multiplier, a percentage or "normal".
func lineHeight(v *Value) (float64, error) {
	if v.Keyword != nil {
		if strings.EqualFold(*v.Keyword, "normal") {
			return 0, nil
		}
		return 0, ErrInvalidValue
	}
	n, unit, err := number(v)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "":
	case "%":
		n /= 100
	default:
		return 0, fmt.Errorf("%w: line height takes a number or a percentage", ErrInvalidValue)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative line height", ErrInvalidValue)
	}
	return n, nil
}

// length accepts px (or a bare number), pt, or "none" for zero.
func length(v *Value) (float64, error) {
	if v.Keyword != nil {
		if strings.EqualFold(*v.Keyword, "none") {
			return 0, nil
		}
		return 0, ErrInvalidValue
	}
	n, unit, err := number(v)
	if err != nil {
		return 0, err
	}
	switch unit {
	case "", "px":
	case "pt":
		n = n * 96 / 72
	default:
		return 0, fmt.Errorf("%w: unit %q is not a length", ErrInvalidValue, unit)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length", ErrInvalidValue)
	}
	return n, nil
}

// number splits a Number token into its value and unit.
func number(v *Value) (float64, string, error) {
	if v.Number == nil {
		return 0, "", fmt.Errorf("%w: number expected", ErrInvalidValue)
	}
	raw := *v.Number
	digits := strings.TrimRight(raw, "ptx%")
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return n, raw[len(digits):], nil
}

package textbox

import (
	"errors"
	"fmt"
	"testing"
)

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  fmt.Stringer
		want string
	}{
		{AlignLeft, "Left"},
		{AlignCenter, "Center"},
		{AlignRight, "Right"},
		{HorizontalAlign(42), unknownStr},
		{AlignTop, "Top"},
		{AlignMiddle, "Middle"},
		{AlignBottom, "Bottom"},
		{VerticalAlign(-1), unknownStr},
		{OverflowClip, "Clip"},
		{OverflowVisible, "Visible"},
		{OverflowScroll, "Scroll"},
		{OverflowBehavior(9), unknownStr},
	}
	for _, tt := range tests {
		if s := tt.got.String(); s != tt.want {
			t.Errorf("String() = %q, want %q", s, tt.want)
		}
	}
}

func TestOverflowPolicy(t *testing.T) {
	tests := []struct {
		o     Overflow
		wantH bool
		wantV bool
	}{
		{Overflow{}, false, false},
		{Overflow{Horizontal: OverflowVisible}, true, false},
		{Overflow{Horizontal: OverflowScroll, Vertical: OverflowScroll}, true, true},
		{Overflow{Vertical: OverflowVisible}, false, true},
	}
	for _, tt := range tests {
		if got := tt.o.AllowsHorizontalOverflow(); got != tt.wantH {
			t.Errorf("%+v.AllowsHorizontalOverflow() = %v, want %v", tt.o, got, tt.wantH)
		}
		if got := tt.o.AllowsVerticalOverflow(); got != tt.wantV {
			t.Errorf("%+v.AllowsVerticalOverflow() = %v, want %v", tt.o, got, tt.wantV)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	if r.Origin() != (Point{X: 1, Y: 2}) {
		t.Errorf("Origin() = %+v", r.Origin())
	}
	if r.Size() != (Size{Width: 3, Height: 4}) {
		t.Errorf("Size() = %+v", r.Size())
	}
	if r.Empty() {
		t.Error("Empty() = true for 3x4 rect")
	}
	if !(Rect{Width: 3}).Empty() {
		t.Error("Empty() = false for zero height rect")
	}
}

func TestMalformedLayoutError(t *testing.T) {
	err := malformed("align", "line %d out of range", 3)

	if got, want := err.Error(), "textbox: malformed layout in align: line 3 out of range"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrMalformedLayout) {
		t.Error("errors.Is(err, ErrMalformedLayout) = false")
	}

	wrapped := fmt.Errorf("render frame: %w", err)
	var mle *MalformedLayoutError
	if !errors.As(wrapped, &mle) || mle.Stage != "align" {
		t.Errorf("errors.As() = %+v", mle)
	}
}

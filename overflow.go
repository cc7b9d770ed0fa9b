package textbox

import (
	"fmt"
	"log/slog"
)

// OverflowState tells whether an axis overflows.
type OverflowState uint8

const (
	// StateInBounds means the content fits; Amount is the remaining slack.
	StateInBounds OverflowState = iota
	// StateOverflowing means the content exceeds the bound; Amount is the excess.
	StateOverflowing
)

// AxisOverflow is the overflow result of one axis. Amount is never negative.
type AxisOverflow struct {
	State  OverflowState
	Amount float64
}

// InBounds returns an in-bounds result with the given slack.
func InBounds(slack float64) AxisOverflow {
	return AxisOverflow{State: StateInBounds, Amount: slack}
}

// Overflowing returns an overflowing result with the given excess.
func Overflowing(excess float64) AxisOverflow {
	return AxisOverflow{State: StateOverflowing, Amount: excess}
}

// IsOverflowing reports whether the content exceeds the bound.
func (a AxisOverflow) IsOverflowing() bool {
	return a.State == StateOverflowing
}

// Slack returns the unused space, or 0 when overflowing.
func (a AxisOverflow) Slack() float64 {
	if a.IsOverflowing() {
		return 0
	}
	return a.Amount
}

// Excess returns by how much the content overflows, or 0 when in bounds.
func (a AxisOverflow) Excess() float64 {
	if a.IsOverflowing() {
		return a.Amount
	}
	return 0
}

// String returns "InBounds(slack)" or "Overflowing(excess)".
func (a AxisOverflow) String() string {
	if a.IsOverflowing() {
		return fmt.Sprintf("Overflowing(%g)", a.Amount)
	}
	return fmt.Sprintf("InBounds(%g)", a.Amount)
}

// measureAxis compares consumed space against a bound.
func measureAxis(consumed, bound float64) AxisOverflow {
	if consumed > bound {
		return Overflowing(consumed - bound)
	}
	return InBounds(bound - consumed)
}

// OverflowPass1 is the overflow estimate against the unreduced rectangle.
type OverflowPass1 struct {
	Horizontal AxisOverflow
	Vertical   AxisOverflow
}

// OverflowPass2 is the overflow estimate after scrollbar space has been
// reserved. It is authoritative for alignment and scrollbar sizing.
type OverflowPass2 struct {
	Horizontal AxisOverflow
	Vertical   AxisOverflow
}

// LogValue implements slog.LogValuer.
func (o OverflowPass1) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("horizontal", o.Horizontal.String()),
		slog.String("vertical", o.Vertical.String()),
	)
}

// LogValue implements slog.LogValuer.
func (o OverflowPass2) LogValue() slog.Value {
	return OverflowPass1(o).LogValue()
}

// extent is the space a token stream occupies.
type extent struct {
	width  float64
	height float64
}

// measureTokens simulates line breaking without placing glyphs. When wrap
// is set, a word that does not fit on a non-empty line starts a new one and
// the vertical extent runs from the top edge to the last baseline. Without
// wrapping, lines only end at LineBreak tokens and the vertical extent is
// their count times the vertical advance.
func measureTokens(tokens []Token, width float64, wrap bool, m Metrics) extent {
	if len(tokens) == 0 {
		return extent{}
	}

	var (
		line   lineCursor
		widest float64
		breaks int
		wraps  int
	)

	newLine := func() {
		widest = max(widest, line.width())
		line.reset()
	}

	for _, tok := range tokens {
		switch t := tok.(type) {
		case Word:
			if wrap && line.wraps(t.TotalWidth, width) {
				newLine()
				wraps++
			}
			line.addWord(t.TotalWidth, m.SpaceWidth)
		case Tab:
			line.addTab(m.TabWidth)
		case LineBreak:
			newLine()
			breaks++
		}
	}
	widest = max(widest, line.width())

	height := float64(breaks) * m.VerticalAdvance
	if wrap {
		height = m.TopOffset + float64(breaks+wraps)*m.VerticalAdvance
	}
	return extent{width: widest, height: height}
}

// estimatePass1 estimates per-axis overflow of tokens inside size.
func estimatePass1(tokens []Token, size Size, m Metrics, overflow Overflow) OverflowPass1 {
	wrap := !overflow.AllowsHorizontalOverflow()
	e := measureTokens(tokens, size.Width, wrap, m)

	return OverflowPass1{
		Horizontal: measureAxis(e.width, size.Width),
		Vertical:   measureAxis(e.height, size.Height),
	}
}

// estimatePass2 reserves scrollbar space for every axis that overflowed in
// pass 1 and estimates again. A horizontal scrollbar takes height, a
// vertical one takes width. Reservation happens at most once per axis.
func estimatePass2(tokens []Token, size Size, m Metrics, overflow Overflow, bar Scrollbar, pass1 OverflowPass1) (Size, OverflowPass2) {
	reduced := size
	if pass1.Horizontal.IsOverflowing() {
		reduced.Height = max(0, reduced.Height-bar.Thickness)
		Logger().Debug("textbox: scrollbar reserved", "axis", "horizontal", "thickness", bar.Thickness)
	}
	if pass1.Vertical.IsOverflowing() {
		reduced.Width = max(0, reduced.Width-bar.Thickness)
		Logger().Debug("textbox: scrollbar reserved", "axis", "vertical", "thickness", bar.Thickness)
	}

	return reduced, OverflowPass2(estimatePass1(tokens, reduced, m, overflow))
}

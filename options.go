package textbox

// Option configures a Layouter during creation.
//
// Example:
//
//	l := textbox.New(
//		textbox.WithShaping(shaping.NewHarfBuzz(source)),
//		textbox.WithTabSize(8),
//	)
type Option func(*Layouter)

// WithShaping sets the adjuster that corrects glyph positions from the
// segmented tokens. A nil adjuster restores IdentityShaping.
func WithShaping(a ShapingAdjuster) Option {
	return func(l *Layouter) {
		if a == nil {
			a = IdentityShaping
		}
		l.shaping = a
	}
}

// WithJustification sets the adjuster that runs on the left-aligned lines.
// A nil adjuster restores IdentityJustification.
func WithJustification(a JustificationAdjuster) Option {
	return func(l *Layouter) {
		if a == nil {
			a = IdentityJustification
		}
		l.justification = a
	}
}

// WithTabSize sets the tab width in spaces. Values below 1 restore
// DefaultTabSize.
func WithTabSize(spaces int) Option {
	return func(l *Layouter) {
		if spaces < 1 {
			spaces = DefaultTabSize
		}
		l.tabSize = spaces
	}
}

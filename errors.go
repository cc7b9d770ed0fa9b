package textbox

import (
	"errors"
	"fmt"
)

// Sentinel errors for the textbox package.
var (
	// ErrMalformedLayout is returned when the input or an intermediate
	// layout table violates a layout invariant. Every *MalformedLayoutError
	// unwraps to it.
	ErrMalformedLayout = errors.New("textbox: malformed layout")

	// ErrNilFont is returned when a Request has no font metrics provider.
	ErrNilFont = errors.New("textbox: nil font metrics provider")
)

// MalformedLayoutError reports which pipeline stage rejected its input.
type MalformedLayoutError struct {
	// Stage names the rejecting stage ("request", "shaping", "justification", "align").
	Stage string
	// Reason describes the violated invariant.
	Reason string
}

func (e *MalformedLayoutError) Error() string {
	return fmt.Sprintf("textbox: malformed layout in %s: %s", e.Stage, e.Reason)
}

// Unwrap returns ErrMalformedLayout.
func (e *MalformedLayoutError) Unwrap() error {
	return ErrMalformedLayout
}

func malformed(stage, format string, args ...any) error {
	return &MalformedLayoutError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

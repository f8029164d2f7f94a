package surface

import (
	"errors"
	"fmt"
)

// Kind identifies what a control on the display surface is.
type Kind string

const (
	KindInput  Kind = "input"
	KindText   Kind = "text"
	KindButton Kind = "button"
)

var (
	ErrMissingControl = errors.New("missing control")
	ErrWrongKind      = errors.New("wrong control kind")
)

// Control is the single capability every control exposes. SetValue is a
// programmatic write and never raises the notifications delivered to
// Subscribe handlers; only user edits (inputs) and activations (buttons) do.
type Control interface {
	ID() string
	Kind() Kind
	Value() string
	SetValue(v string)
	Subscribe(handler func())
}

// Surface resolves controls by identifier.
type Surface interface {
	Lookup(id string, kind Kind) (Control, error)
}

// IntegrityError reports a control that is absent or of an unexpected kind.
type IntegrityError struct {
	ID   string
	Want Kind
	Got  Kind
	Err  error
}

func (e *IntegrityError) Error() string {
	if errors.Is(e.Err, ErrWrongKind) {
		return fmt.Sprintf("control with ID %s is not %s (got %s)", e.ID, e.Want, e.Got)
	}
	return fmt.Sprintf("cannot find control by ID: %s", e.ID)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// Check validates a looked-up control against the expected kind. Surfaces
// call it from Lookup so every implementation reports failures the same way.
func Check(id string, ctrl Control, want Kind) (Control, error) {
	if ctrl == nil {
		return nil, &IntegrityError{ID: id, Want: want, Err: ErrMissingControl}
	}
	if ctrl.Kind() != want {
		return nil, &IntegrityError{ID: id, Want: want, Got: ctrl.Kind(), Err: ErrWrongKind}
	}
	return ctrl, nil
}

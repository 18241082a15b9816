package props

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds. Every error returned by this package wraps exactly one of them.
var (
	// ErrInvalidGeometry reports non-positive dimensions, out-of-range angles
	// or a compound whose net area is not positive.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrUnsupported reports a query with no closed form for the shape.
	ErrUnsupported = errors.New("unsupported")

	// ErrDomain reports a normalized quantity that would divide by zero.
	ErrDomain = errors.New("domain error")
)

// Error describes a failed construction or query.
type Error struct {
	Kind  error  // one of ErrInvalidGeometry, ErrUnsupported, ErrDomain
	Shape string // shape kind, e.g. "rectangle"
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Shape, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func invalid(shape, format string, args ...any) error {
	return &Error{Kind: ErrInvalidGeometry, Shape: shape, Msg: fmt.Sprintf(format, args...)}
}

func unsupported(shape, query string) error {
	return &Error{Kind: ErrUnsupported, Shape: shape, Msg: query + " has no closed form"}
}

func domain(shape, format string, args ...any) error {
	return &Error{Kind: ErrDomain, Shape: shape, Msg: fmt.Sprintf(format, args...)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// checkLength rejects lengths for which no closed form exists.
func checkLength(shape, name string, v float64) error {
	if !finite(v) || v <= 0 {
		return invalid(shape, "%s must be positive, got %g", name, v)
	}
	return nil
}

// checkAngle rejects angles outside the open interval (0, π).
func checkAngle(shape, name string, v float64) error {
	if !finite(v) || v <= 0 || v >= math.Pi {
		return invalid(shape, "%s must lie strictly between 0 and π, got %g", name, v)
	}
	return nil
}

package pivot

import "errors"

// Domain errors for pivot motion handling.
var (
	// ErrInvalidPivotSpec indicates a pivot value that is neither a real
	// number nor a function of time.
	ErrInvalidPivotSpec = errors.New("pivot: spec must be a number or a func(float64) float64")

	// ErrInvalidStepSize indicates a non-positive differentiation step.
	ErrInvalidStepSize = errors.New("pivot: differentiation step must be positive")
)

// Func is a scalar function of time.
type Func func(t float64) float64

// Motion is one coordinate of the pivot's movement over time: either a
// constant or a function of time. The zero value is a stationary pivot at
// the origin.
type Motion struct {
	fn Func
}

// Constant returns the motion of a pivot coordinate frozen at v.
func Constant(v float64) Motion {
	return Motion{fn: func(float64) float64 { return v }}
}

// Function wraps an arbitrary trajectory f. Callers routinely pass
// interpolations of empirical data here; f must accept any time within the
// simulated range, including intermediate values chosen by an adaptive
// integrator.
func Function(f Func) Motion {
	return Motion{fn: f}
}

// FromValue normalizes a loosely typed pivot specification. Accepted kinds
// are real numbers and unary functions of time; anything else fails with
// ErrInvalidPivotSpec.
func FromValue(v any) (Motion, error) {
	switch s := v.(type) {
	case nil:
		return Motion{}, nil
	case Motion:
		return s, nil
	case float64:
		return Constant(s), nil
	case float32:
		return Constant(float64(s)), nil
	case int:
		return Constant(float64(s)), nil
	case Func:
		return Function(s), nil
	case func(float64) float64:
		return Function(s), nil
	default:
		return Motion{}, ErrInvalidPivotSpec
	}
}

// At evaluates the coordinate at time t.
func (m Motion) At(t float64) float64 {
	if m.fn == nil {
		return 0
	}
	return m.fn(t)
}

// IsStatic reports whether the motion is the zero value, i.e. no trajectory
// was supplied at all. A Constant(0) motion is not static in this sense: it
// still carries an explicit function.
func (m Motion) IsStatic() bool {
	return m.fn == nil
}

// AsFunc returns the motion as a plain function of time.
func (m Motion) AsFunc() Func {
	if m.fn == nil {
		return func(float64) float64 { return 0 }
	}
	return m.fn
}

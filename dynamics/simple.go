package dynamics

import (
	"fmt"
	"math"

	"github.com/PabRod/pendulum/pivot"
)

// Default physical parameters shared by both models.
const (
	DefaultLength  = 1.0
	DefaultGravity = 9.8
	DefaultStep    = 1e-4
)

// SimpleParams configures a single pendulum, possibly damped and possibly
// suspended from a moving pivot.
type SimpleParams struct {
	Length  float64 // rod length, > 0
	Gravity float64 // local gravitational acceleration
	Damping float64 // linear damping coefficient, >= 0

	// PivotX and PivotY describe the suspension point's movement. They are
	// interpreted as positions unless PivotIsAcceleration is set, in which
	// case they are used as accelerations directly.
	PivotX, PivotY      pivot.Motion
	PivotIsAcceleration bool

	// Step is the finite-difference step used to differentiate pivot
	// positions into accelerations.
	Step float64
}

// DefaultSimpleParams returns the canonical 1 m undamped pendulum under
// standard gravity with a stationary pivot.
func DefaultSimpleParams() SimpleParams {
	return SimpleParams{
		Length:  DefaultLength,
		Gravity: DefaultGravity,
		Step:    DefaultStep,
	}
}

// SimplePendulum is the compiled form of SimpleParams. Build it with
// NewSimple; the zero value is not usable.
type SimplePendulum struct {
	p      SimpleParams
	ax, ay pivot.Func // nil for a stationary pivot
}

// NewSimple validates p and binds it into a derivative function.
//
// With a stationary pivot the equation of motion is the classical damped
// pendulum, dω/dt = -(g/l) sin θ - d ω. A moving pivot adds the fictitious
// terms -ax(t) cos θ / l - ay(t) sin θ / l.
func NewSimple(p SimpleParams) (*SimplePendulum, error) {
	if p.Length <= 0 {
		return nil, fmt.Errorf("%w: l=%g", ErrInvalidLength, p.Length)
	}
	if p.Damping < 0 {
		return nil, fmt.Errorf("%w: d=%g", ErrInvalidDamping, p.Damping)
	}

	s := &SimplePendulum{p: p}
	if !p.PivotX.IsStatic() || !p.PivotY.IsStatic() {
		ax, ay, err := pivot.Accelerations(p.PivotX, p.PivotY, p.PivotIsAcceleration, p.Step)
		if err != nil {
			return nil, err
		}
		s.ax, s.ay = ax, ay
	} else if p.Step <= 0 {
		// The step is unused without a pivot trajectory but still part of
		// the validated surface.
		return nil, fmt.Errorf("%w: h=%g", pivot.ErrInvalidStepSize, p.Step)
	}

	return s, nil
}

// StateDim returns 2: (θ, ω).
func (s *SimplePendulum) StateDim() int { return 2 }

// Params returns the parameters the model was built from.
func (s *SimplePendulum) Params() SimpleParams { return s.p }

// Derive returns (dθ/dt, dω/dt) at state x and time t.
func (s *SimplePendulum) Derive(x State, t float64) State {
	th, w := x[0], x[1]
	l := s.p.Length

	alpha := -(s.p.Gravity/l)*math.Sin(th) - s.p.Damping*w
	if s.ax != nil {
		alpha -= s.ax(t)*math.Cos(th)/l + s.ay(t)*math.Sin(th)/l
	}

	return State{w, alpha}
}

// Energy returns the mechanical energy per unit mass relative to the pivot
// frame: ½(lω)² + gl(1-cos θ). The simple pendulum's motion is independent
// of its mass, so none is tracked.
func (s *SimplePendulum) Energy(x State) float64 {
	th, w := x[0], x[1]
	l, g := s.p.Length, s.p.Gravity

	ke := 0.5 * (l * w) * (l * w)
	pe := g * l * (1 - math.Cos(th))
	return ke + pe
}

// Positions returns the Cartesian coordinates of the pivot and the bob at
// state x and time t: x_bob = x_pivot + l sin θ, y_bob = y_pivot - l cos θ.
// When the pivot trajectory was supplied as accelerations its position is
// unknown and the pivot is reported at the origin.
func (s *SimplePendulum) Positions(x State, t float64) (px, py, bx, by float64) {
	if !s.p.PivotIsAcceleration {
		px = s.p.PivotX.At(t)
		py = s.p.PivotY.At(t)
	}
	bx = px + s.p.Length*math.Sin(x[0])
	by = py - s.p.Length*math.Cos(x[0])
	return px, py, bx, by
}

package dynamics

import (
	"fmt"
	"math"

	"github.com/PabRod/pendulum/pivot"
)

// DoubleParams configures a two-link pendulum, each link a point mass on a
// massless rod, suspended from a shared (possibly moving) pivot.
type DoubleParams struct {
	M1, M2 float64 // link masses, > 0
	L1, L2 float64 // link lengths, > 0

	Gravity float64

	PivotX, PivotY      pivot.Motion
	PivotIsAcceleration bool

	// Step is the finite-difference step for position-mode pivots.
	Step float64
}

// DefaultDoubleParams returns two unit links under standard gravity with a
// stationary pivot.
func DefaultDoubleParams() DoubleParams {
	return DoubleParams{
		M1: 1, M2: 1,
		L1: DefaultLength, L2: DefaultLength,
		Gravity: DefaultGravity,
		Step:    DefaultStep,
	}
}

// SetMasses assigns (m1, m2) from a list, failing with ErrInvalidMass unless
// exactly two values are given. Positivity is checked by NewDouble.
func (p *DoubleParams) SetMasses(m ...float64) error {
	if len(m) != 2 {
		return fmt.Errorf("%w: want 2 masses, got %d", ErrInvalidMass, len(m))
	}
	p.M1, p.M2 = m[0], m[1]
	return nil
}

// SetLengths assigns (l1, l2) from a list, failing with ErrInvalidLength
// unless exactly two values are given.
func (p *DoubleParams) SetLengths(l ...float64) error {
	if len(l) != 2 {
		return fmt.Errorf("%w: want 2 lengths, got %d", ErrInvalidLength, len(l))
	}
	p.L1, p.L2 = l[0], l[1]
	return nil
}

// DoublePendulum is the compiled form of DoubleParams. Build it with
// NewDouble; the zero value is not usable.
//
// Damping is deliberately not modelled for the double pendulum.
type DoublePendulum struct {
	p      DoubleParams
	ax, ay pivot.Func
}

// NewDouble validates p and binds it into a derivative function.
func NewDouble(p DoubleParams) (*DoublePendulum, error) {
	if p.L1 <= 0 || p.L2 <= 0 {
		return nil, fmt.Errorf("%w: l=(%g, %g)", ErrInvalidLength, p.L1, p.L2)
	}
	if p.M1 <= 0 || p.M2 <= 0 {
		return nil, fmt.Errorf("%w: m=(%g, %g)", ErrInvalidMass, p.M1, p.M2)
	}

	d := &DoublePendulum{p: p}
	if !p.PivotX.IsStatic() || !p.PivotY.IsStatic() {
		ax, ay, err := pivot.Accelerations(p.PivotX, p.PivotY, p.PivotIsAcceleration, p.Step)
		if err != nil {
			return nil, err
		}
		d.ax, d.ay = ax, ay
	} else if p.Step <= 0 {
		return nil, fmt.Errorf("%w: h=%g", pivot.ErrInvalidStepSize, p.Step)
	}

	return d, nil
}

// StateDim returns 4: (θ1, ω1, θ2, ω2).
func (d *DoublePendulum) StateDim() int { return 4 }

// Params returns the parameters the model was built from.
func (d *DoublePendulum) Params() DoubleParams { return d.p }

// Derive returns (dθ1, dω1, dθ2, dω2) at state x and time t.
//
// The Lagrangian equations couple the two angular accelerations through an
// inertia matrix. Its inverse is known in closed form, so the accelerations
// come from a single 4x4 matrix-vector product instead of a linear solve:
//
//	Mat = [[1,0,0,0], [0,a,0,b], [0,0,1,0], [0,b,0,dd]]
//	dstate = Mat · F
//
// with a, b, dd the inverse-inertia coefficients and F the forcing vector.
func (d *DoublePendulum) Derive(x State, t float64) State {
	th1, w1, th2, w2 := x[0], x[1], x[2], x[3]
	m1, m2 := d.p.M1, d.p.M2
	l1, l2 := d.p.L1, d.p.L2
	g := d.p.Gravity
	mt := m1 + m2

	sd, cd := math.Sincos(th1 - th2)

	det := m2 * (l1 * l2) * (l1 * l2) * (m1 + m2*sd*sd)
	if det == 0 {
		// Unreachable with validated masses and lengths.
		panic("pendulum: singular inertia matrix")
	}

	a := m2 * l2 * l2 / det
	b := -m2 * l1 * l2 * cd / det
	dd := mt * l1 * l1 / det

	var axv, ayv float64
	if d.ax != nil {
		axv, ayv = d.ax(t), d.ay(t)
	}

	s1, c1 := math.Sincos(th1)
	s2, c2 := math.Sincos(th2)

	f2 := -m2*l1*l2*sd*w2*w2 - mt*g*l1*s1 - mt*l1*(axv*c1+ayv*s1)
	f4 := m2*l1*l2*sd*w1*w1 - m2*g*l2*s2 - m2*l2*(axv*c2+ayv*s2)

	return State{
		w1,
		a*f2 + b*f4,
		w2,
		b*f2 + dd*f4,
	}
}

// Energy returns the mechanical energy in the pivot frame.
func (d *DoublePendulum) Energy(x State) float64 {
	th1, w1, th2, w2 := x[0], x[1], x[2], x[3]
	m1, m2 := d.p.M1, d.p.M2
	l1, l2 := d.p.L1, d.p.L2
	g := d.p.Gravity

	v1sq := l1 * l1 * w1 * w1
	v2sq := v1sq + l2*l2*w2*w2 + 2*l1*l2*w1*w2*math.Cos(th1-th2)

	ke := 0.5*m1*v1sq + 0.5*m2*v2sq
	y1 := -l1 * math.Cos(th1)
	y2 := y1 - l2*math.Cos(th2)
	pe := m1*g*y1 + m2*g*y2

	return ke + pe
}

// Positions returns the Cartesian coordinates of the pivot and both bobs at
// state x and time t. As with the simple pendulum, an acceleration-mode
// pivot is reported at the origin.
func (d *DoublePendulum) Positions(x State, t float64) (px, py, x1, y1, x2, y2 float64) {
	if !d.p.PivotIsAcceleration {
		px = d.p.PivotX.At(t)
		py = d.p.PivotY.At(t)
	}
	x1 = px + d.p.L1*math.Sin(x[0])
	y1 = py - d.p.L1*math.Cos(x[0])
	x2 = x1 + d.p.L2*math.Sin(x[2])
	y2 = y1 - d.p.L2*math.Cos(x[2])
	return px, py, x1, y1, x2, y2
}

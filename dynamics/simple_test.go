package dynamics

import (
	"errors"
	"math"
	"testing"

	"github.com/PabRod/pendulum/pivot"
)

func TestSimpleEquilibria(t *testing.T) {
	sys, err := NewSimple(DefaultSimpleParams())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		x    State
	}{
		{"stable", State{0, 0}},
		{"unstable", State{math.Pi, 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dx := sys.Derive(tc.x, 0)
			if math.Abs(dx[0]) > 1e-8 || math.Abs(dx[1]) > 1e-8 {
				t.Errorf("expected zero derivative at %v, got %v", tc.x, dx)
			}
		})
	}
}

func TestSimpleGravityTerm(t *testing.T) {
	p := DefaultSimpleParams()
	p.Length = 2

	sys, err := NewSimple(p)
	if err != nil {
		t.Fatal(err)
	}

	dx := sys.Derive(State{math.Pi / 2, 0}, 0)

	expected := -p.Gravity / p.Length
	if math.Abs(dx[1]-expected) > 1e-12 {
		t.Errorf("expected angular acceleration %f, got %f", expected, dx[1])
	}
}

func TestSimpleDampingTerm(t *testing.T) {
	p := DefaultSimpleParams()
	p.Damping = 2

	sys, err := NewSimple(p)
	if err != nil {
		t.Fatal(err)
	}

	dx := sys.Derive(State{0, 1}, 0)

	if math.Abs(dx[1]-(-2)) > 1e-12 {
		t.Errorf("expected damping acceleration -2, got %f", dx[1])
	}
}

func TestSimpleGalileanInvariance(t *testing.T) {
	inertial, err := NewSimple(DefaultSimpleParams())
	if err != nil {
		t.Fatal(err)
	}

	// Uniform pivot velocity must be indistinguishable from rest.
	p := DefaultSimpleParams()
	p.PivotX = pivot.Function(func(t float64) float64 { return 1.0 * t })
	p.PivotY = pivot.Function(func(t float64) float64 { return 2.0 * t })

	moving, err := NewSimple(p)
	if err != nil {
		t.Fatal(err)
	}

	states := []State{{0, 0}, {0.3, -1}, {math.Pi / 2, 2}}
	for _, x := range states {
		for _, tt := range []float64{0, 0.7, 5} {
			// Differentiating the linear motion numerically leaves rounding
			// noise of order eps*t/h² on the accelerations.
			a := inertial.Derive(x, tt)
			b := moving.Derive(x, tt)
			if math.Abs(a[0]-b[0]) > 1e-5 || math.Abs(a[1]-b[1]) > 1e-5 {
				t.Errorf("state %v t=%g: inertial %v != uniform-velocity %v", x, tt, a, b)
			}
		}
	}
}

func TestSimpleRespondsToAcceleratedPivot(t *testing.T) {
	inertial, err := NewSimple(DefaultSimpleParams())
	if err != nil {
		t.Fatal(err)
	}

	p := DefaultSimpleParams()
	p.PivotX = pivot.Function(func(t float64) float64 { return 1.0 * t * t })
	p.PivotY = pivot.Function(func(t float64) float64 { return 2.0 * t })

	accelerated, err := NewSimple(p)
	if err != nil {
		t.Fatal(err)
	}

	x := State{0, 0}
	a := inertial.Derive(x, 0)
	b := accelerated.Derive(x, 0)

	if a[1] == b[1] {
		t.Error("accelerated pivot produced inertial dynamics")
	}
}

func TestSimpleEnergy(t *testing.T) {
	sys, err := NewSimple(DefaultSimpleParams())
	if err != nil {
		t.Fatal(err)
	}

	if e := sys.Energy(State{0, 0}); e != 0 {
		t.Errorf("expected zero energy at rest, got %f", e)
	}

	// Pure rotation at the bottom: ½(lω)².
	if e := sys.Energy(State{0, 2}); math.Abs(e-2) > 1e-12 {
		t.Errorf("expected kinetic energy 2, got %f", e)
	}

	// Inverted at rest: 2gl.
	if e := sys.Energy(State{math.Pi, 0}); math.Abs(e-2*9.8) > 1e-12 {
		t.Errorf("expected potential energy %f, got %f", 2*9.8, e)
	}
}

func TestSimplePositions(t *testing.T) {
	p := DefaultSimpleParams()
	p.PivotX = pivot.Function(func(t float64) float64 { return t })

	sys, err := NewSimple(p)
	if err != nil {
		t.Fatal(err)
	}

	px, py, bx, by := sys.Positions(State{math.Pi / 2, 0}, 3)

	if px != 3 || py != 0 {
		t.Errorf("expected pivot at (3, 0), got (%f, %f)", px, py)
	}
	if math.Abs(bx-4) > 1e-12 || math.Abs(by) > 1e-12 {
		t.Errorf("expected bob at (4, 0), got (%f, %f)", bx, by)
	}
}

func TestSimpleValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SimpleParams)
		want   error
	}{
		{"negative length", func(p *SimpleParams) { p.Length = -1 }, ErrInvalidLength},
		{"zero length", func(p *SimpleParams) { p.Length = 0 }, ErrInvalidLength},
		{"negative damping", func(p *SimpleParams) { p.Damping = -1 }, ErrInvalidDamping},
		{"zero step", func(p *SimpleParams) { p.Step = 0 }, pivot.ErrInvalidStepSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultSimpleParams()
			tc.mutate(&p)

			_, err := NewSimple(p)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSimpleStateDim(t *testing.T) {
	sys, _ := NewSimple(DefaultSimpleParams())
	if sys.StateDim() != 2 {
		t.Errorf("expected state dim 2, got %d", sys.StateDim())
	}
}

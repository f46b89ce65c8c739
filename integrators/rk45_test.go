package integrators

import (
	"math"
	"testing"

	"github.com/PabRod/pendulum/dynamics"
)

func TestRK45AdaptiveAccuracy(t *testing.T) {
	integ := NewRK45()

	x := dynamics.State{1, 0}
	tNow := 0.0
	tEnd := 10.0
	dt := 0.01
	tol := 1e-9

	for tNow < tEnd {
		h := math.Min(dt, tEnd-tNow)
		next, dtNext, err := integ.StepAdaptive(harmonic{}, x, tNow, h, tol)
		if err != nil {
			t.Fatal(err)
		}
		x = next
		tNow += h
		dt = dtNext
	}

	if math.Abs(x[0]-math.Cos(tEnd)) > 1e-6 {
		t.Errorf("position error too large: got %.9f, expected %.9f", x[0], math.Cos(tEnd))
	}
	if math.Abs(x[1]-(-math.Sin(tEnd))) > 1e-6 {
		t.Errorf("velocity error too large: got %.9f, expected %.9f", x[1], -math.Sin(tEnd))
	}
}

func TestRK45GrowsStepOnSmoothProblems(t *testing.T) {
	integ := NewRK45()

	_, dtNext, err := integ.StepAdaptive(harmonic{}, dynamics.State{1, 0}, 0, 1e-4, 1e-6)
	if err != nil {
		t.Fatal(err)
	}

	if dtNext <= 1e-4 {
		t.Errorf("expected step growth on a smooth problem, got %g", dtNext)
	}
}

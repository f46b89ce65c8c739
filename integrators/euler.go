package integrators

import "github.com/PabRod/pendulum/dynamics"

// Euler is the explicit first-order scheme. Mostly useful as a baseline for
// accuracy comparisons.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamics.System, x dynamics.State, t, dt float64) dynamics.State {
	dx := sys.Derive(x, t)
	next := make(dynamics.State, len(x))
	for i := range x {
		next[i] = x[i] + dt*dx[i]
	}
	return next
}

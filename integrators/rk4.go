package integrators

import "github.com/PabRod/pendulum/dynamics"

// RK4 is the classic fourth-order Runge-Kutta scheme. Scratch buffers are
// reused across steps, so a single instance must not be shared between
// concurrently running solves.
type RK4 struct {
	scratch dynamics.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys dynamics.System, x dynamics.State, t, dt float64) dynamics.State {
	n := len(x)
	if len(r.scratch) != n {
		r.scratch = make(dynamics.State, n)
	}

	k1 := sys.Derive(x, t)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + 0.5*dt*k1[i]
	}
	k2 := sys.Derive(r.scratch, t+0.5*dt)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + 0.5*dt*k2[i]
	}
	k3 := sys.Derive(r.scratch, t+0.5*dt)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + dt*k3[i]
	}
	k4 := sys.Derive(r.scratch, t+dt)

	next := make(dynamics.State, n)
	dt6 := dt / 6.0
	for i := 0; i < n; i++ {
		next[i] = x[i] + dt6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return next
}

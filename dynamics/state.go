package dynamics

import "math"

// State is the instantaneous configuration of a system: (θ, ω) for the
// simple pendulum, (θ1, ω1, θ2, ω2) for the double pendulum. Angles are
// radians measured from the vertical at each link's pivot.
type State []float64

// Clone returns an independent copy.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is a finite number.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm.
func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is an autonomous or time-dependent ODE, dX/dt = f(X, t).
type System interface {
	// Derive returns the time derivative of x at time t. It must be pure:
	// integrators call it at arbitrary intermediate times, not just at the
	// caller's requested grid points.
	Derive(x State, t float64) State

	// StateDim is the expected length of the state vector.
	StateDim() int
}

// Hamiltonian is implemented by systems that can report their mechanical
// energy, used for drift diagnostics.
type Hamiltonian interface {
	Energy(x State) float64
}

// Integrator advances a system by one step of size dt.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveIntegrator additionally proposes the next step size from a local
// error estimate. The step itself is always accepted, even when its local
// error exceeds tol; implementations compensate by shrinking dtNext instead
// of rejecting and retrying.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x State, t, dt, tol float64) (next State, dtNext float64, err error)
}

package solver

import (
	"fmt"
	"math"

	"github.com/PabRod/pendulum/dynamics"
	"github.com/PabRod/pendulum/integrators"
)

// Default solve tuning.
const (
	DefaultMaxStep   = 0.01
	DefaultMinStep   = 1e-10
	DefaultTolerance = 1e-9
)

// Options tune the numerical side of a solve. The zero value is filled with
// defaults; dynamics are never affected by these knobs.
type Options struct {
	// Integrator advances the state. Defaults to adaptive RK45.
	Integrator dynamics.Integrator

	// MaxStep caps the internal step size. Fixed-step integrators subdivide
	// each grid interval into steps of at most this size.
	MaxStep float64

	// MinStep aborts the solve with ErrStepTooSmall when adaptive stepping
	// collapses below it.
	MinStep float64

	// Tolerance is the local error tolerance for adaptive integrators.
	Tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// WithIntegrator selects the integration scheme.
func WithIntegrator(integ dynamics.Integrator) Option {
	return func(o *Options) { o.Integrator = integ }
}

// WithMaxStep caps the internal step size.
func WithMaxStep(dt float64) Option {
	return func(o *Options) { o.MaxStep = dt }
}

// WithTolerance sets the adaptive error tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

func buildOptions(opts []Option) Options {
	o := Options{
		MaxStep:   DefaultMaxStep,
		MinStep:   DefaultMinStep,
		Tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Integrator == nil {
		o.Integrator = integrators.NewRK45()
	}
	return o
}

// Solve integrates sys from yinit over the time grid ts and returns one
// state per grid point, the first being yinit itself.
//
// Validation failures (wrong state arity, bad grid) are reported before any
// integration work. Numerical failures during integration are wrapped in a
// *SolveError; no partial trajectory is returned.
func Solve(sys dynamics.System, yinit dynamics.State, ts []float64, opts ...Option) (*Trajectory, error) {
	if len(yinit) != sys.StateDim() {
		return nil, fmt.Errorf("%w: want %d components, got %d",
			dynamics.ErrInvalidInitialState, sys.StateDim(), len(yinit))
	}
	if len(ts) == 0 {
		return nil, ErrInvalidTimeGrid
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return nil, fmt.Errorf("%w: ts[%d]=%g after ts[%d]=%g",
				ErrInvalidTimeGrid, i, ts[i], i-1, ts[i-1])
		}
	}

	o := buildOptions(opts)

	traj := &Trajectory{
		Times:  append([]float64(nil), ts...),
		States: make([]dynamics.State, 0, len(ts)),
	}
	x := yinit.Clone()
	traj.States = append(traj.States, x.Clone())

	adaptive, isAdaptive := o.Integrator.(dynamics.AdaptiveIntegrator)
	dt := o.MaxStep
	step := 0

	for i := 1; i < len(ts); i++ {
		t, end := ts[i-1], ts[i]

		for t < end {
			h := math.Min(dt, end-t)

			var next dynamics.State
			if isAdaptive {
				proposed, dtNext, err := adaptive.StepAdaptive(sys, x, t, h, o.Tolerance)
				if err != nil {
					return nil, &SolveError{Step: step, Time: t, State: x, Wrapped: err}
				}
				next = proposed

				// Only error-driven shrinks move the step size or trip the
				// minimum. A step truncated to a sliver before a grid point
				// proposes sizes scaled from the sliver; carrying those over
				// would collapse dt for no numerical reason.
				if dtNext < h {
					if dtNext < o.MinStep {
						return nil, &SolveError{Step: step, Time: t, State: x, Wrapped: ErrStepTooSmall}
					}
					dt = dtNext
				} else if h == dt {
					dt = math.Min(dtNext, o.MaxStep)
				}
			} else {
				next = o.Integrator.Step(sys, x, t, h)
			}

			if !next.IsValid() {
				return nil, &SolveError{Step: step, Time: t, State: x, Wrapped: ErrUnstable}
			}

			x = next
			t += h
			step++
		}

		traj.States = append(traj.States, x.Clone())
	}

	if ham, ok := sys.(dynamics.Hamiltonian); ok {
		e0 := ham.Energy(traj.States[0])
		if e0 != 0 {
			traj.EnergyDrift = math.Abs(ham.Energy(x)-e0) / math.Abs(e0)
		}
	}

	return traj, nil
}

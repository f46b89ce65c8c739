package solver

import (
	"errors"
	"fmt"

	"github.com/PabRod/pendulum/dynamics"
)

var (
	// ErrInvalidTimeGrid indicates an empty or non-increasing time grid.
	ErrInvalidTimeGrid = errors.New("solver: time grid must be non-empty and strictly increasing")

	// ErrUnstable indicates the integration produced NaN or Inf.
	ErrUnstable = errors.New("solver: integration diverged")

	// ErrStepTooSmall indicates the adaptive step collapsed below the
	// configured minimum, usually a sign of stiffness.
	ErrStepTooSmall = errors.New("solver: adaptive step below minimum")
)

// SolveError carries the integration context of a failure.
type SolveError struct {
	Step    int
	Time    float64
	State   dynamics.State
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("step %d (t=%.6g): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}

package dynamics

import "errors"

// Validation errors. All are raised by the model constructors or the solver
// before any numerical work begins; none is recoverable by retrying.
var (
	// ErrInvalidLength indicates a non-positive or wrongly shaped length.
	ErrInvalidLength = errors.New("pendulum: length must be strictly positive")

	// ErrInvalidMass indicates a non-positive or wrongly shaped mass.
	ErrInvalidMass = errors.New("pendulum: mass must be strictly positive")

	// ErrInvalidDamping indicates a negative damping coefficient.
	ErrInvalidDamping = errors.New("pendulum: damping must be non-negative")

	// ErrInvalidInitialState indicates an initial state whose arity does not
	// match the model (2 for simple, 4 for double).
	ErrInvalidInitialState = errors.New("pendulum: initial state has wrong dimension")
)

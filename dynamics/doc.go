// Package dynamics defines the equations of motion for single and double
// pendula, including the non-inertial variants whose suspension point moves
// along an arbitrary trajectory.
//
// Models are plain parameter structs compiled once into a [System] by their
// constructor, which also runs all physical validation. The resulting
// Derive method is pure: it closes only over immutable parameters and the
// pivot acceleration functions, so a single instance may be evaluated from
// concurrent solver runs without coordination.
//
//	sys, err := dynamics.NewSimple(dynamics.SimpleParams{
//		Length:  1,
//		Gravity: 9.8,
//		Damping: 0.5,
//	})
//
// Numerical integration lives elsewhere: anything satisfying [Integrator]
// can advance a System, and the solver package drives it over a time grid.
package dynamics

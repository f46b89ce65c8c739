// Package solver computes trajectories by driving an integrator over a
// caller-supplied time grid.
//
// [Solve] validates its inputs once, up front, and then delegates every
// numerical decision to the chosen integrator; with the default adaptive
// RK45 the internal step times are integrator-chosen and generally do not
// coincide with the requested grid, but every grid point is hit exactly and
// produces one trajectory row. Numerical blow-ups are reported as a
// *SolveError and never retried.
package solver

// Package integrators provides numerical schemes for advancing a
// [dynamics.System] in time: explicit Euler, classic RK4, and an adaptive
// Dormand-Prince RK45.
//
// The solver package treats these purely through the dynamics.Integrator
// contract, so alternative schemes can be dropped in without touching the
// dynamics layer.
package integrators

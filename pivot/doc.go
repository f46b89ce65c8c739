// Package pivot describes the motion of a pendulum's suspension point.
//
// A pivot trajectory is supplied per axis as a [Motion]: either a constant
// or an arbitrary function of time (empirical data is typically wrapped via
// [Interpolate]). [Accelerations] normalizes a pair of motions into
// acceleration functions, differentiating twice numerically when positions
// rather than accelerations were given.
//
// The numerical differentiation uses nested forward differences, which carry
// an O(h) truncation bias per derivative. That bias is part of the package
// contract: downstream tolerances are tuned to it, so it must not be swapped
// for a centered stencil without revisiting them.
package pivot

package pivot

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInterpolation indicates unusable sample data.
var ErrInterpolation = errors.New("pivot: interpolation needs at least two samples with strictly increasing times")

// InterpolateLinear builds a Motion from sampled data by piecewise-linear
// interpolation. Outside the sampled range the boundary values are held,
// so adaptive integrators probing slightly past the grid stay defined.
func InterpolateLinear(ts, vs []float64) (Motion, error) {
	if err := checkSamples(ts, vs); err != nil {
		return Motion{}, err
	}

	n := len(ts)
	tt := append([]float64(nil), ts...)
	vv := append([]float64(nil), vs...)

	return Function(func(t float64) float64 {
		if t <= tt[0] {
			return vv[0]
		}
		if t >= tt[n-1] {
			return vv[n-1]
		}
		i := sort.SearchFloat64s(tt, t) - 1
		frac := (t - tt[i]) / (tt[i+1] - tt[i])
		return vv[i]*(1-frac) + vv[i+1]*frac
	}), nil
}

// Interpolate builds a Motion from sampled data with a natural cubic
// spline, matching how empirical pivot recordings are usually smoothed
// before being differentiated. Outside the sampled range the boundary
// segments are extrapolated.
func Interpolate(ts, vs []float64) (Motion, error) {
	if err := checkSamples(ts, vs); err != nil {
		return Motion{}, err
	}

	n := len(ts)
	if n == 2 {
		return InterpolateLinear(ts, vs)
	}

	tt := append([]float64(nil), ts...)
	vv := append([]float64(nil), vs...)

	// Second derivatives at the knots, natural boundary conditions.
	// Thomas algorithm on the tridiagonal spline system.
	m := make([]float64, n)
	sub := make([]float64, n)
	for i := 1; i < n-1; i++ {
		hl := tt[i] - tt[i-1]
		hr := tt[i+1] - tt[i]
		diag := 2 * (hl + hr)
		rhs := 6 * ((vv[i+1]-vv[i])/hr - (vv[i]-vv[i-1])/hl)

		w := hl
		if i > 1 {
			diag -= w * sub[i-1]
			rhs -= w * m[i-1]
		}
		sub[i] = hr / diag
		m[i] = rhs / diag
	}
	for i := n - 3; i >= 1; i-- {
		m[i] -= sub[i] * m[i+1]
	}

	return Function(func(t float64) float64 {
		i := sort.SearchFloat64s(tt, t) - 1
		if i < 0 {
			i = 0
		}
		if i > n-2 {
			i = n - 2
		}
		h := tt[i+1] - tt[i]
		a := (tt[i+1] - t) / h
		b := (t - tt[i]) / h
		return a*vv[i] + b*vv[i+1] +
			((a*a*a-a)*m[i]+(b*b*b-b)*m[i+1])*h*h/6
	}), nil
}

func checkSamples(ts, vs []float64) error {
	if len(ts) < 2 || len(ts) != len(vs) {
		return ErrInterpolation
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			return fmt.Errorf("%w: t[%d]=%g repeats or precedes t[%d]=%g",
				ErrInterpolation, i, ts[i], i-1, ts[i-1])
		}
	}
	return nil
}

package pivot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampledSine(n int) (ts, vs []float64) {
	ts = make([]float64, n)
	vs = make([]float64, n)
	for i := range ts {
		ts[i] = 2 * math.Pi * float64(i) / float64(n-1)
		vs[i] = math.Sin(ts[i])
	}
	return ts, vs
}

func TestInterpolateLinearHitsKnots(t *testing.T) {
	ts := []float64{0, 1, 2, 4}
	vs := []float64{1, -1, 3, 3}

	m, err := InterpolateLinear(ts, vs)
	require.NoError(t, err)

	for i := range ts {
		assert.InDelta(t, vs[i], m.At(ts[i]), 1e-12)
	}
	assert.InDelta(t, 0, m.At(0.5), 1e-12)
	assert.InDelta(t, 1, m.At(1.5), 1e-12)
}

func TestInterpolateLinearHoldsBoundaries(t *testing.T) {
	m, err := InterpolateLinear([]float64{0, 1}, []float64{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 2.0, m.At(-5))
	assert.Equal(t, 3.0, m.At(10))
}

func TestInterpolateSplineHitsKnots(t *testing.T) {
	ts, vs := sampledSine(21)

	m, err := Interpolate(ts, vs)
	require.NoError(t, err)

	for i := range ts {
		assert.InDelta(t, vs[i], m.At(ts[i]), 1e-9)
	}
}

func TestInterpolateSplineTracksSmoothCurve(t *testing.T) {
	ts, vs := sampledSine(41)

	m, err := Interpolate(ts, vs)
	require.NoError(t, err)

	for tt := 0.1; tt < 2*math.Pi; tt += 0.37 {
		assert.InDelta(t, math.Sin(tt), m.At(tt), 1e-3)
	}
}

func TestInterpolateTwoPointsFallsBackToLinear(t *testing.T) {
	m, err := Interpolate([]float64{0, 2}, []float64{0, 4})
	require.NoError(t, err)

	assert.InDelta(t, 2, m.At(1), 1e-12)
}

func TestInterpolateRejectsBadSamples(t *testing.T) {
	_, err := Interpolate([]float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrInterpolation)

	_, err = Interpolate([]float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, ErrInterpolation)

	_, err = Interpolate([]float64{0, 0, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInterpolation)

	_, err = InterpolateLinear([]float64{1, 0}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInterpolation)
}

package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccelerationsRecoverConstantAcceleration(t *testing.T) {
	// A pivot falling as -g/2 t² should differentiate back to -g.
	posX := Function(func(t float64) float64 { return -9.8 / 2 * t * t })
	posY := Constant(0)

	ax, ay, err := Accelerations(posX, posY, false, 1e-4)
	require.NoError(t, err)

	assert.InDelta(t, -9.8, ax(0), 1e-5,
		"numerical differentiation is failing; try decreasing h")
	assert.InDelta(t, 0, ay(0), 1e-12)
}

func TestAccelerationsPassthrough(t *testing.T) {
	constX, constY := Constant(0), Constant(1)

	ax, ay, err := Accelerations(constX, constY, true, 1e-4)
	require.NoError(t, err)
	assert.InDelta(t, 0, ax(0), 1e-12)
	assert.InDelta(t, 1, ay(0), 1e-12)

	funX := Function(func(t float64) float64 { return 0 })
	funY := Function(func(t float64) float64 { return 1 })

	ax, ay, err = Accelerations(funX, funY, true, 1e-4)
	require.NoError(t, err)
	assert.InDelta(t, 0, ax(7), 1e-12)
	assert.InDelta(t, 1, ay(7), 1e-12)
}

func TestAccelerationsLinearMotionVanishes(t *testing.T) {
	// Uniform velocity has exactly zero second forward difference.
	posX := Function(func(t float64) float64 { return 3 * t })
	posY := Function(func(t float64) float64 { return -2 * t })

	ax, ay, err := Accelerations(posX, posY, false, 1e-4)
	require.NoError(t, err)

	for _, tt := range []float64{0, 0.5, 1, 10} {
		assert.InDelta(t, 0, ax(tt), 1e-9)
		assert.InDelta(t, 0, ay(tt), 1e-9)
	}
}

func TestAccelerationsInvalidStep(t *testing.T) {
	for _, h := range []float64{0, -1e-4} {
		_, _, err := Accelerations(Constant(1), Constant(2), true, h)
		assert.ErrorIs(t, err, ErrInvalidStepSize)
	}
}

func TestDiffLinear(t *testing.T) {
	d := Diff(func(t float64) float64 { return 5*t + 1 }, 1e-4)

	assert.InDelta(t, 5, d(0), 1e-9)
	assert.InDelta(t, 5, d(3), 1e-9)
}

func TestDiff2ForwardBias(t *testing.T) {
	// Forward differences see a cubic's curvature slightly ahead of t, so
	// the recovered acceleration carries the documented O(h) bias.
	h := 1e-4
	d2 := Diff2(func(t float64) float64 { return t * t * t }, h)

	// Exact second derivative at t=1 is 6; the stencil yields 6 + 6h + ...
	assert.InDelta(t, 6, d2(1), 1e-2)
	assert.Greater(t, d2(1), 6.0)
}

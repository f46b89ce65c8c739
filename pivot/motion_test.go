package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotionZeroValue(t *testing.T) {
	var m Motion

	assert.True(t, m.IsStatic())
	assert.Equal(t, 0.0, m.At(0))
	assert.Equal(t, 0.0, m.At(12.5))
	assert.Equal(t, 0.0, m.AsFunc()(3))
}

func TestMotionConstant(t *testing.T) {
	m := Constant(2.5)

	assert.False(t, m.IsStatic())
	assert.Equal(t, 2.5, m.At(0))
	assert.Equal(t, 2.5, m.At(-7))
}

func TestMotionFunction(t *testing.T) {
	m := Function(func(t float64) float64 { return 3 * t })

	assert.False(t, m.IsStatic())
	assert.Equal(t, 6.0, m.At(2))
}

func TestFromValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		at1  float64
	}{
		{"float64", 1.5, 1.5},
		{"int", 2, 2.0},
		{"func", func(t float64) float64 { return t * t }, 1.0},
		{"Func", Func(func(t float64) float64 { return -t }), -1.0},
		{"motion", Constant(4), 4.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := FromValue(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.at1, m.At(1), 1e-12)
		})
	}
}

func TestFromValueNil(t *testing.T) {
	m, err := FromValue(nil)
	require.NoError(t, err)
	assert.True(t, m.IsStatic())
}

func TestFromValueRejectsNonScalars(t *testing.T) {
	for _, bad := range []any{"fast", []float64{1, 2}, [2]int{0, 0}, map[string]float64{}} {
		_, err := FromValue(bad)
		assert.ErrorIs(t, err, ErrInvalidPivotSpec)
	}
}

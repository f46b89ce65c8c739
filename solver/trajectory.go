package solver

import "github.com/PabRod/pendulum/dynamics"

// Trajectory is the result of a solve: one state per requested time sample,
// with States[0] equal to the initial condition at Times[0]. The caller
// owns it exclusively after Solve returns.
type Trajectory struct {
	Times  []float64
	States []dynamics.State

	// EnergyDrift is the relative change in mechanical energy between the
	// first and last sample, when the system can report energy. Zero
	// otherwise.
	EnergyDrift float64
}

// Len returns the number of samples.
func (tr *Trajectory) Len() int { return len(tr.Times) }

// Last returns the final state.
func (tr *Trajectory) Last() dynamics.State {
	return tr.States[len(tr.States)-1]
}

// Col extracts one state component as a time series, e.g. Col(0) for θ.
func (tr *Trajectory) Col(i int) []float64 {
	col := make([]float64, len(tr.States))
	for j, x := range tr.States {
		col[j] = x[i]
	}
	return col
}

// Linspace returns n evenly spaced samples over [t0, t1], endpoints
// included.
func Linspace(t0, t1 float64, n int) []float64 {
	if n < 2 {
		return []float64{t0}
	}
	ts := make([]float64, n)
	step := (t1 - t0) / float64(n-1)
	for i := range ts {
		ts[i] = t0 + float64(i)*step
	}
	ts[n-1] = t1
	return ts
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabRod/pendulum/dynamics"
	"github.com/PabRod/pendulum/solver"
)

func sampleTrajectory() *solver.Trajectory {
	return &solver.Trajectory{
		Times: []float64{0, 0.5, 1},
		States: []dynamics.State{
			{0.5, 0},
			{0.31, -1.2},
			{-0.12, -1.9},
		},
		EnergyDrift: 1e-7,
	}
}

func TestSaveAndLoadRun(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Init())

	runID, err := s.Save(RunMetadata{Model: "simple", Integrator: "rk45"}, sampleTrajectory())
	require.NoError(t, err)
	assert.Contains(t, runID, "simple_")

	meta, err := s.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "simple", meta.Model)
	assert.Equal(t, 3, meta.Samples)
	assert.Equal(t, 0.0, meta.T0)
	assert.Equal(t, 1.0, meta.T1)

	traj, err := s.LoadTrajectory(runID)
	require.NoError(t, err)
	require.Equal(t, 3, traj.Len())
	assert.InDelta(t, 0.31, traj.States[1][0], 1e-12)
	assert.InDelta(t, -1.9, traj.States[2][1], 1e-12)
}

func TestListRuns(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Init())

	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = s.Save(RunMetadata{Model: "double"}, sampleTrajectory())
	require.NoError(t, err)

	runs, err = s.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "double", runs[0].Model)
}

func TestListMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))

	runs, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoadPivotMotions(t *testing.T) {
	// Unsorted rows, unparseable and non-finite artifacts and an extra
	// column, as found in real tracker exports. ParseFloat accepts "Inf", so
	// those rows must be dropped explicitly or they poison the spline.
	csvData := "t,x,y,label\n" +
		"1.0,2.0,0.5,a\n" +
		"0.0,0.0,0.0,b\n" +
		"0.5,1.0,0.25,c\n" +
		"0.5,9.9,9.9,dup\n" +
		"2.0,NaN,1.0,bad\n" +
		"2.5,Inf,1.25,bad\n" +
		"2.5,5.0,-Inf,bad\n" +
		"3.0,6.0,1.5,d\n"

	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0644))

	px, py, err := LoadPivotMotions(path)
	require.NoError(t, err)

	// x(t) = 2t through the kept samples.
	assert.InDelta(t, 0, px.At(0), 1e-9)
	assert.InDelta(t, 2, px.At(1), 1e-9)
	assert.InDelta(t, 6, px.At(3), 1e-9)
	assert.InDelta(t, 0.5, py.At(1), 1e-9)
}

func TestLoadPivotMotionsMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

	_, _, err := LoadPivotMotions(path)
	assert.Error(t, err)
}

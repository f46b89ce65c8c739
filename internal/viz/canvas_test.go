package viz

import (
	"strings"
	"testing"

	"github.com/PabRod/pendulum/dynamics"
	"github.com/PabRod/pendulum/solver"
)

func TestCanvasMark(t *testing.T) {
	c := NewCanvas(10, 5, -1, 1, -1, 1)

	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("fresh canvas should be empty")
	}

	c.Mark(0, 0)
	if !strings.ContainsFunc(c.String(), func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("expected a dot after Mark")
	}

	// Out-of-window points must be ignored, not wrap around.
	c.Clear()
	c.Mark(5, 5)
	c.Mark(-5, -5)
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("out-of-window marks should not draw")
	}
}

func TestCanvasSegmentEndpoints(t *testing.T) {
	c := NewCanvas(10, 5, -1, 1, -1, 1)
	c.Segment(-0.9, -0.9, 0.9, 0.9)

	dots := 0
	for _, r := range c.String() {
		if r > 0x2800 && r <= 0x28FF {
			dots++
		}
	}
	if dots < 5 {
		t.Errorf("expected a drawn line, got %d non-empty cells", dots)
	}
}

func TestPlotTrajectory(t *testing.T) {
	traj := &solver.Trajectory{
		Times:  []float64{0, 1, 2},
		States: []dynamics.State{{0, 1}, {0.5, 0.5}, {0.8, -0.2}},
	}

	out := PlotTrajectory(traj, 40, 5)
	if !strings.Contains(out, "theta (rad)") || !strings.Contains(out, "omega (rad/s)") {
		t.Errorf("missing captions in plot output:\n%s", out)
	}
}

func TestPhasePortrait(t *testing.T) {
	traj := &solver.Trajectory{
		Times:  []float64{0, 1, 2},
		States: []dynamics.State{{0, 1}, {0.5, 0.5}, {0.8, -0.2}},
	}

	out, err := PhasePortrait(traj, 0, 1, 30, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "state[0]") {
		t.Errorf("missing axis annotation:\n%s", out)
	}

	if _, err := PhasePortrait(traj, 0, 5, 30, 10); err == nil {
		t.Error("expected error for out-of-range axis")
	}
}

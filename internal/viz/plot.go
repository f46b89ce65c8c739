package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/PabRod/pendulum/solver"
)

// SeriesLabels maps state columns to captions per model.
func SeriesLabels(stateDim int) []string {
	if stateDim == 4 {
		return []string{"theta1 (rad)", "omega1 (rad/s)", "theta2 (rad)", "omega2 (rad/s)"}
	}
	return []string{"theta (rad)", "omega (rad/s)"}
}

// PlotTrajectory renders every state component as an asciigraph time
// series.
func PlotTrajectory(traj *solver.Trajectory, width, height int) string {
	if traj.Len() == 0 {
		return ""
	}

	labels := SeriesLabels(len(traj.States[0]))
	var b strings.Builder
	for i := range traj.States[0] {
		caption := fmt.Sprintf("x%d", i)
		if i < len(labels) {
			caption = labels[i]
		}
		b.WriteString(asciigraph.Plot(traj.Col(i),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		))
		b.WriteString("\n\n")
	}
	return b.String()
}

// PhasePortrait scatters two state components against each other on a
// braille canvas.
func PhasePortrait(traj *solver.Trajectory, xIdx, yIdx, width, height int) (string, error) {
	if traj.Len() == 0 {
		return "", fmt.Errorf("empty trajectory")
	}
	dim := len(traj.States[0])
	if xIdx >= dim || yIdx >= dim {
		return "", fmt.Errorf("axis out of range: state has %d components", dim)
	}

	xs, ys := traj.Col(xIdx), traj.Col(yIdx)
	xMin, xMax := bounds(xs)
	yMin, yMax := bounds(ys)

	canvas := NewCanvas(width, height, xMin, xMax, yMin, yMax)
	for i := range xs {
		canvas.Mark(xs[i], ys[i])
	}

	var b strings.Builder
	b.WriteString(canvas.String())
	fmt.Fprintf(&b, "x: state[%d] in [%.3g, %.3g]   y: state[%d] in [%.3g, %.3g]\n",
		xIdx, xMin, xMax, yIdx, yMin, yMax)
	return b.String(), nil
}

func bounds(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		// Degenerate axis; pad so projection stays finite.
		lo, hi = lo-1, hi+1
	}
	return lo, hi
}

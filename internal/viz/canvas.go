// Package viz renders trajectories in the terminal: braille-canvas
// animations, asciigraph time series and phase portraits.
package viz

import "strings"

// Braille cells pack 2x4 dots each; the canvas therefore has a sub-pixel
// resolution of (Width*2) x (Height*4).
var brailleDots = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

type Canvas struct {
	Width, Height int
	grid          [][]rune

	// World window mapped onto the canvas, y increasing upwards.
	xMin, xMax, yMin, yMax float64
}

// NewCanvas creates a w x h cell canvas showing the world rectangle
// [xMin, xMax] x [yMin, yMax].
func NewCanvas(w, h int, xMin, xMax, yMin, yMax float64) *Canvas {
	c := &Canvas{
		Width: w, Height: h,
		xMin: xMin, xMax: xMax, yMin: yMin, yMax: yMax,
		grid: make([][]rune, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		for j := range c.grid[i] {
			c.grid[i][j] = brailleBase
		}
	}
	return c
}

// Clear resets all dots.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = brailleBase
		}
	}
}

func (c *Canvas) project(wx, wy float64) (px, py int) {
	px = int((wx - c.xMin) / (c.xMax - c.xMin) * float64(c.Width*2))
	py = int((c.yMax - wy) / (c.yMax - c.yMin) * float64(c.Height*4))
	return px, py
}

// Mark sets the dot nearest to world coordinates (wx, wy).
func (c *Canvas) Mark(wx, wy float64) {
	c.set(c.project(wx, wy))
}

// Segment draws a straight line between two world points with Bresenham's
// algorithm.
func (c *Canvas) Segment(x0, y0, x1, y1 float64) {
	px0, py0 := c.project(x0, y0)
	px1, py1 := c.project(x1, y1)

	dx := absInt(px1 - px0)
	dy := absInt(py1 - py0)
	sx := -1
	if px0 < px1 {
		sx = 1
	}
	sy := -1
	if py0 < py1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.set(px0, py0)
		if px0 == px1 && py0 == py1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			px0 += sx
		}
		if e2 < dx {
			err += dx
			py0 += sy
		}
	}
}

func (c *Canvas) set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.grid[row][col] |= brailleDots[y%4][x%2]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

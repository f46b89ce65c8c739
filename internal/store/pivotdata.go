package store

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/PabRod/pendulum/pivot"
)

// ParseFloat happily returns Inf for "Inf"; recorded artifacts carry both.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LoadPivotMotions reads an empirical pivot recording from a CSV file with
// a header containing t, x and y columns, sorts it by time, drops rows with
// missing or non-finite values, and returns the two coordinates as
// spline-interpolated motions.
func LoadPivotMotions(path string) (px, py pivot.Motion, err error) {
	file, err := os.Open(path)
	if err != nil {
		return px, py, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return px, py, err
	}
	if len(records) < 2 {
		return px, py, fmt.Errorf("pivot data %s: no samples", path)
	}

	tCol, xCol, yCol := -1, -1, -1
	for i, name := range records[0] {
		switch name {
		case "t", "time":
			tCol = i
		case "x":
			xCol = i
		case "y":
			yCol = i
		}
	}
	if tCol < 0 || xCol < 0 || yCol < 0 {
		return px, py, fmt.Errorf("pivot data %s: need t, x and y columns, got %v", path, records[0])
	}

	type sample struct{ t, x, y float64 }
	samples := make([]sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) <= tCol || len(record) <= xCol || len(record) <= yCol {
			continue
		}
		t, errT := strconv.ParseFloat(record[tCol], 64)
		x, errX := strconv.ParseFloat(record[xCol], 64)
		y, errY := strconv.ParseFloat(record[yCol], 64)
		if errT != nil || errX != nil || errY != nil {
			continue
		}
		if !finite(t) || !finite(x) || !finite(y) {
			continue
		}
		samples = append(samples, sample{t, x, y})
	}

	sort.SliceStable(samples, func(i, j int) bool { return samples[i].t < samples[j].t })

	ts := make([]float64, 0, len(samples))
	xs := make([]float64, 0, len(samples))
	ys := make([]float64, 0, len(samples))
	for _, s := range samples {
		// Duplicate timestamps are measurement artifacts; keep the first.
		if len(ts) > 0 && s.t <= ts[len(ts)-1] {
			continue
		}
		ts = append(ts, s.t)
		xs = append(xs, s.x)
		ys = append(ys, s.y)
	}

	px, err = pivot.Interpolate(ts, xs)
	if err != nil {
		return px, py, fmt.Errorf("pivot data %s: %w", path, err)
	}
	py, err = pivot.Interpolate(ts, ys)
	if err != nil {
		return px, py, fmt.Errorf("pivot data %s: %w", path, err)
	}
	return px, py, nil
}

package lp

import (
	"math"

	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/mathutil"
)

// Series is a named polyline for display layers.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Boundary samples both constraint boundaries and the upper envelope of the
// feasible region over x in [0, 1.1·largest finite x-intercept]. Only points in
// the first quadrant are returned. The last series is named "feasible".
func (r Resolver) Boundary(samples int) []Series {
	if samples < 2 {
		samples = constants.DefaultBoundarySamples
	}

	ic := r.AxisIntercepts()
	xMax := mathutil.MaxFinite(ic.HoursX, ic.WoodX) * constants.BoundaryPadding
	yMax := mathutil.MaxFinite(ic.HoursY, ic.WoodY) * constants.BoundaryPadding
	if xMax == 0 {
		xMax = mathutil.MaxFinite(ic.HoursY, ic.WoodY)
	}

	constraints := r.Constraints()
	series := make([]Series, 0, len(constraints)+1)
	for _, c := range constraints {
		series = append(series, Series{Name: c.Name, Points: sampleLine(c, xMax, yMax, samples)})
	}

	feasible := Series{Name: "feasible"}
	step := xMax / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := float64(i) * step
		y, ok := envelopeAt(constraints, x, yMax)
		if !ok {
			break
		}
		feasible.Points = append(feasible.Points, Point{X: x, Y: y})
	}
	series = append(series, feasible)

	return series
}

func sampleLine(c Constraint, xMax, yMax float64, samples int) []Point {
	switch {
	case c.A == 0 && c.B == 0:
		return nil
	case c.B == 0:
		x := c.XIntercept()
		return []Point{{X: x, Y: 0}, {X: x, Y: yMax}}
	}

	points := make([]Point, 0, samples)
	step := xMax / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := float64(i) * step
		y := (c.Total - c.A*x) / c.B
		if y < 0 {
			break
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// envelopeAt returns the largest feasible y at x, or false once x leaves the region.
func envelopeAt(constraints []Constraint, x, yMax float64) (float64, bool) {
	y := math.Inf(1)
	for _, c := range constraints {
		if c.B == 0 {
			if !mathutil.AtMost(c.A*x, c.Total) {
				return 0, false
			}
			continue
		}
		y = math.Min(y, (c.Total-c.A*x)/c.B)
	}
	if math.IsInf(y, 1) {
		y = yMax
	}
	if y < 0 {
		return 0, false
	}
	return y, true
}

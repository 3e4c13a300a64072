package lp

import (
	"math"

	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/mathutil"
)

// Constraint is the half-plane A·x + B·y ≤ Total.
type Constraint struct {
	Name  string  `json:"name"`
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Total float64 `json:"total"`
}

// Usage returns the resource consumed at p.
func (c Constraint) Usage(p Point) float64 {
	return c.A*p.X + c.B*p.Y
}

// Satisfied reports whether p is inside the half-plane.
func (c Constraint) Satisfied(p Point) bool {
	return mathutil.AtMost(c.Usage(p), c.Total)
}

// XIntercept is x where the boundary meets y = 0, or +Inf when A is zero.
func (c Constraint) XIntercept() float64 {
	return mathutil.SafeDivide(c.Total, c.A)
}

// YIntercept is y where the boundary meets x = 0, or +Inf when B is zero.
func (c Constraint) YIntercept() float64 {
	return mathutil.SafeDivide(c.Total, c.B)
}

// Intercepts holds the single-axis intercepts of both constraints. An infinite
// value marks an unbounded axis for that constraint.
type Intercepts struct {
	HoursX float64
	HoursY float64
	WoodX  float64
	WoodY  float64
}

// XBound is the smallest finite x-intercept, or +Inf when x is unbounded.
func (i Intercepts) XBound() float64 {
	return mathutil.MinFinite(i.HoursX, i.WoodX)
}

// YBound is the smallest finite y-intercept, or +Inf when y is unbounded.
func (i Intercepts) YBound() float64 {
	return mathutil.MinFinite(i.HoursY, i.WoodY)
}

// UnboundedAxes names every intercept that is infinite.
func (i Intercepts) UnboundedAxes() []string {
	var axes []string
	for _, item := range []struct {
		name  string
		value float64
	}{
		{"hours/x", i.HoursX},
		{"hours/y", i.HoursY},
		{"wood/x", i.WoodX},
		{"wood/y", i.WoodY},
	} {
		if math.IsInf(item.value, 1) {
			axes = append(axes, item.name)
		}
	}
	return axes
}

// Resolver derives the geometry of the feasible region for a Problem.
type Resolver struct {
	problem Problem
}

// NewResolver constructs a Resolver for the given problem.
func NewResolver(problem Problem) Resolver {
	return Resolver{problem: problem}
}

// Hours is the labor constraint.
func (r Resolver) Hours() Constraint {
	return Constraint{
		Name:  "hours",
		A:     r.problem.Products[0].HoursPerUnit,
		B:     r.problem.Products[1].HoursPerUnit,
		Total: r.problem.Limits.TotalHours,
	}
}

// Wood is the material constraint.
func (r Resolver) Wood() Constraint {
	return Constraint{
		Name:  "wood",
		A:     r.problem.Products[0].WoodPerUnit,
		B:     r.problem.Products[1].WoodPerUnit,
		Total: r.problem.Limits.TotalWood,
	}
}

// Constraints returns both constraints in a fixed order (hours, wood).
func (r Resolver) Constraints() []Constraint {
	return []Constraint{r.Hours(), r.Wood()}
}

// AxisIntercepts returns the four single-axis intercepts.
func (r Resolver) AxisIntercepts() Intercepts {
	hours, wood := r.Hours(), r.Wood()
	return Intercepts{
		HoursX: hours.XIntercept(),
		HoursY: hours.YIntercept(),
		WoodX:  wood.XIntercept(),
		WoodY:  wood.YIntercept(),
	}
}

// Intersection solves the 2×2 system formed by both constraint boundaries.
//
// ErrDegenerateSystem is returned for parallel or coincident lines. When the
// lines cross outside the first quadrant the crossing point is returned along
// with ErrOutsideFirstQuadrant.
func (r Resolver) Intersection() (Point, error) {
	hours, wood := r.Hours(), r.Wood()

	det := hours.A*wood.B - hours.B*wood.A
	scale := math.Max(math.Abs(hours.A*wood.B), math.Abs(hours.B*wood.A))
	if scale == 0 || math.Abs(det) <= constants.Epsilon*scale {
		return Point{}, ErrDegenerateSystem
	}

	p := Point{
		X: (hours.Total*wood.B - hours.B*wood.Total) / det,
		Y: (hours.A*wood.Total - hours.Total*wood.A) / det,
	}
	if !mathutil.IsFinite(p.X) || !mathutil.IsFinite(p.Y) {
		return Point{}, ErrDegenerateSystem
	}

	p.X = clampNoise(p.X)
	p.Y = clampNoise(p.Y)
	if p.X < 0 || p.Y < 0 {
		return p, ErrOutsideFirstQuadrant
	}
	return p, nil
}

// CornerPoints returns the vertices of the feasible region: the origin, every
// finite axis intercept that also satisfies the other constraint, and the
// intersection when it lies in the first quadrant. Near-identical points are
// reported once.
func (r Resolver) CornerPoints() []Point {
	hours, wood := r.Hours(), r.Wood()
	corners := []Point{{X: 0, Y: 0}}

	add := func(p Point) {
		for _, existing := range corners {
			if samePoint(existing, p) {
				return
			}
		}
		corners = append(corners, p)
	}

	axisCandidates := []struct {
		point Point
		other Constraint
	}{
		{Point{X: hours.XIntercept()}, wood},
		{Point{Y: hours.YIntercept()}, wood},
		{Point{X: wood.XIntercept()}, hours},
		{Point{Y: wood.YIntercept()}, hours},
	}
	for _, c := range axisCandidates {
		if !mathutil.IsFinite(c.point.X) || !mathutil.IsFinite(c.point.Y) {
			continue
		}
		if c.other.Satisfied(c.point) {
			add(c.point)
		}
	}

	if p, err := r.Intersection(); err == nil {
		add(p)
	}

	return corners
}

func samePoint(a, b Point) bool {
	tolX := constants.Epsilon * math.Max(1, math.Max(math.Abs(a.X), math.Abs(b.X)))
	tolY := constants.Epsilon * math.Max(1, math.Max(math.Abs(a.Y), math.Abs(b.Y)))
	return mathutil.WithinTolerance(a.X, b.X, tolX) && mathutil.WithinTolerance(a.Y, b.Y, tolY)
}

// clampNoise snaps tiny negative values produced by rounding to zero.
func clampNoise(v float64) float64 {
	if v < 0 && v > -constants.Epsilon*math.Max(1, math.Abs(v)) {
		return 0
	}
	return v
}

package lp

import (
	"fmt"

	"github.com/iwvelando/production-optimizer/pkg/mathutil"
)

// searchGrid enumerates integer points 1 ≤ x ≤ ⌊x bound⌋, 1 ≤ y ≤ ⌊y bound⌋ in
// x-major order and keeps the feasible ones. Ties keep the first point seen.
func searchGrid(problem Problem, policy Policy) Result {
	ic := NewResolver(problem).AxisIntercepts()
	xBound, yBound := ic.XBound(), ic.YBound()
	if !mathutil.IsFinite(xBound) || !mathutil.IsFinite(yBound) {
		return noSolution(StatusUnbounded, "grid search bound is infinite")
	}

	// Bounds stay float64 until the cell limit is checked; huge intercepts
	// overflow int.
	fx := mathutil.FloorWithSlack(xBound)
	fy := mathutil.FloorWithSlack(yBound)
	if fx < 1 || fy < 1 {
		return noSolution(StatusNoFeasiblePoint,
			fmt.Sprintf("grid is empty (x ≤ %g, y ≤ %g)", fx, fy))
	}
	if fx*fy > float64(policy.MaxGridCells) {
		return noSolution(StatusSearchLimit,
			fmt.Sprintf("grid of %g×%g points exceeds limit of %d", fx, fy, policy.MaxGridCells))
	}
	nx, ny := int(fx), int(fy)

	var (
		feasible      []Candidate
		bestIdx       = -1
		preferredIdx  = -1
		usePreference = policy.hasPreference()
	)
	for x := 1; x <= nx; x++ {
		for y := 1; y <= ny; y++ {
			c := problem.Evaluate(Point{X: float64(x), Y: float64(y)})
			if !problem.Fits(c) {
				continue
			}
			feasible = append(feasible, c)
			idx := len(feasible) - 1
			if bestIdx < 0 || c.Profit > feasible[bestIdx].Profit {
				bestIdx = idx
			}
			if usePreference && policy.prefers(c) &&
				(preferredIdx < 0 || c.Profit > feasible[preferredIdx].Profit) {
				preferredIdx = idx
			}
		}
	}

	if bestIdx < 0 {
		return noSolution(StatusNoFeasiblePoint, "no grid point with x > 0 and y > 0 satisfies both constraints")
	}

	res := Result{
		Status:     StatusOptimal,
		Policy:     PolicyGrid,
		Best:       feasible[bestIdx],
		Candidates: feasible,
	}
	switch {
	case usePreference && preferredIdx >= 0:
		res.Best = feasible[preferredIdx]
		res.Preferred = true
		if preferredIdx != bestIdx {
			res.Notes = append(res.Notes, fmt.Sprintf(
				"preferred point (%g, %g) chosen over unrestricted best (%g, %g)",
				feasible[preferredIdx].X, feasible[preferredIdx].Y,
				feasible[bestIdx].X, feasible[bestIdx].Y))
		}
	case usePreference:
		res.Notes = append(res.Notes, "no feasible point satisfies the preference; using unrestricted best")
	}
	return res
}

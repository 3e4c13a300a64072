package lp

import (
	"fmt"

	"github.com/iwvelando/production-optimizer/pkg/mathutil"
)

// evaluateCorners scores every vertex, floors the best one to whole units and
// reports either the vertex profit or the floored profit depending on policy.
//
// Flooring the optimum of the continuous relaxation does not guarantee the best
// integer mix; the grid policy exists for that.
func evaluateCorners(problem Problem, policy Policy) Result {
	corners := NewResolver(problem).CornerPoints()

	evaluated := make([]Candidate, 0, len(corners))
	bestIdx := 0
	for i, p := range corners {
		evaluated = append(evaluated, problem.Evaluate(p))
		if evaluated[i].Profit > evaluated[bestIdx].Profit {
			bestIdx = i
		}
	}

	vertex := evaluated[bestIdx]
	floored := problem.Evaluate(Point{
		X: mathutil.FloorWithSlack(vertex.X),
		Y: mathutil.FloorWithSlack(vertex.Y),
	})

	if floored.X == 0 && floored.Y == 0 {
		res := noSolution(StatusNoFeasiblePoint,
			fmt.Sprintf("best vertex (%g, %g) floors to the origin", vertex.X, vertex.Y))
		res.Policy = PolicyCorner
		res.Vertex = &vertex
		res.Corners = evaluated
		return res
	}

	best := floored
	var notes []string
	if policy.CornerProfit == CornerProfitVertex {
		best.Profit = vertex.Profit
		if vertex.Profit != floored.Profit {
			notes = append(notes, fmt.Sprintf(
				"reported profit is the vertex profit; floored point earns %g", floored.Profit))
		}
	}
	if vertex.Point != floored.Point {
		notes = append(notes, fmt.Sprintf("vertex (%g, %g) floored to (%g, %g)",
			vertex.X, vertex.Y, floored.X, floored.Y))
	}
	if policy.hasPreference() {
		notes = append(notes, "preference rules apply to the grid policy only")
	}

	return Result{
		Status:  StatusOptimal,
		Policy:  PolicyCorner,
		Best:    best,
		Vertex:  &vertex,
		Corners: evaluated,
		Notes:   notes,
	}
}

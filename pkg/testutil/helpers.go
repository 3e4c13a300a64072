// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/production-optimizer/pkg/lp"
)

// FindCandidate finds the candidate at (x, y) in the candidates slice.
// Returns a pointer to the candidate if found, nil otherwise.
func FindCandidate(candidates []lp.Candidate, x, y float64) *lp.Candidate {
	for i := range candidates {
		if candidates[i].X == x && candidates[i].Y == y {
			return &candidates[i]
		}
	}
	return nil
}

// WorkshopProblem returns the table and chair case study with the given limits.
func WorkshopProblem(hours, wood float64) lp.Problem {
	return lp.Problem{
		Products: [2]lp.ProductParams{
			{Name: "Meja", Profit: 750000, HoursPerUnit: 6, WoodPerUnit: 4},
			{Name: "Kursi", Profit: 300000, HoursPerUnit: 2, WoodPerUnit: 1.5},
		},
		Limits: lp.ResourceLimits{TotalHours: hours, TotalWood: wood},
	}
}

// SmallProblem returns a problem whose grid holds only four feasible points:
// (1, 1), (1, 2), (2, 1) and (2, 2), with (2, 2) binding both constraints.
func SmallProblem() lp.Problem {
	return lp.Problem{
		Products: [2]lp.ProductParams{
			{Name: "A", Profit: 30, HoursPerUnit: 2, WoodPerUnit: 1},
			{Name: "B", Profit: 20, HoursPerUnit: 1, WoodPerUnit: 2},
		},
		Limits: lp.ResourceLimits{TotalHours: 6, TotalWood: 6},
	}
}

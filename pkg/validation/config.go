// Package validation provides configuration validation utilities.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/lp"
	"github.com/iwvelando/production-optimizer/pkg/mathutil"
)

// ProductInfo carries the fields of one product needed for validation.
type ProductInfo struct {
	Name         string
	Profit       float64
	HoursPerUnit float64
	WoodPerUnit  float64
}

// ProblemValidator inspects optimization parameters for conditions that are
// legal but likely surprising.
type ProblemValidator struct {
	Products      []ProductInfo
	TotalHours    float64
	TotalWood     float64
	Policy        string
	HasPreference bool
	MaxGridCells  int
}

// ValidateProduct returns warnings for a single product.
func ValidateProduct(p ProductInfo) []string {
	var warnings []string

	if p.Profit <= 0 {
		warnings = append(warnings, fmt.Sprintf("Product '%s' has non-positive profit (%v) - it will never improve the optimum", p.Name, p.Profit))
	}

	switch {
	case p.HoursPerUnit == 0 && p.WoodPerUnit == 0:
		warnings = append(warnings, fmt.Sprintf("Product '%s' uses neither hours nor wood - production is unbounded", p.Name))
	case p.HoursPerUnit == 0:
		warnings = append(warnings, fmt.Sprintf("Product '%s' uses no hours - the hours constraint does not bound it", p.Name))
	case p.WoodPerUnit == 0:
		warnings = append(warnings, fmt.Sprintf("Product '%s' uses no wood - the wood constraint does not bound it", p.Name))
	}

	return warnings
}

// ValidateAll validates the whole problem and returns warnings
func (pv *ProblemValidator) ValidateAll() []string {
	var warnings []string

	for _, product := range pv.Products {
		warnings = append(warnings, ValidateProduct(product)...)
	}

	if len(pv.Products) != 2 {
		return append(warnings, fmt.Sprintf("Expected 2 products, got %d", len(pv.Products)))
	}
	if pv.TotalHours <= 0 || pv.TotalWood <= 0 {
		return warnings
	}

	problem := pv.problem()
	resolver := lp.NewResolver(problem)

	if _, err := resolver.Intersection(); errors.Is(err, lp.ErrDegenerateSystem) {
		warnings = append(warnings, "Hours and wood constraints are parallel - they have no unique intersection")
	}

	if pv.Policy == constants.PolicyGrid {
		ic := resolver.AxisIntercepts()
		cells := mathutil.FloorWithSlack(ic.XBound()) * mathutil.FloorWithSlack(ic.YBound())
		limit := pv.MaxGridCells
		if limit <= 0 {
			limit = constants.DefaultMaxGridCells
		}
		if math.IsInf(cells, 0) || math.IsNaN(cells) || cells > float64(limit) {
			warnings = append(warnings, fmt.Sprintf("Grid search space exceeds %d cells - the grid policy will not search it", limit))
		}
	}

	if pv.Policy == constants.PolicyCorner && pv.HasPreference {
		warnings = append(warnings, "Preference rules only apply to the grid policy and are ignored for corner")
	}

	return warnings
}

func (pv *ProblemValidator) problem() lp.Problem {
	var problem lp.Problem
	for i := 0; i < 2; i++ {
		problem.Products[i] = lp.ProductParams{
			Name:         pv.Products[i].Name,
			Profit:       pv.Products[i].Profit,
			HoursPerUnit: pv.Products[i].HoursPerUnit,
			WoodPerUnit:  pv.Products[i].WoodPerUnit,
		}
	}
	problem.Limits = lp.ResourceLimits{TotalHours: pv.TotalHours, TotalWood: pv.TotalWood}
	return problem
}

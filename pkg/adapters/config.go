// Package adapters provides adapter implementations between different package interfaces.
package adapters

import (
	"github.com/iwvelando/production-optimizer/internal/config"
	"github.com/iwvelando/production-optimizer/pkg/lp"
)

// ProductToParams converts a configured product into solver parameters. An empty
// name falls back to the product's role.
func ProductToParams(product config.ProductConfig, role string) lp.ProductParams {
	name := product.Name
	if name == "" {
		name = role
	}
	return lp.ProductParams{
		Name:         name,
		Profit:       product.Profit,
		HoursPerUnit: product.HoursPerUnit,
		WoodPerUnit:  product.WoodPerUnit,
	}
}

// ConfigToProblem converts the configuration into an immutable lp.Problem.
// Tables become the x product and chairs the y product.
func ConfigToProblem(conf *config.Configuration) lp.Problem {
	if conf == nil {
		return lp.Problem{}
	}
	return lp.Problem{
		Products: [2]lp.ProductParams{
			ProductToParams(conf.Products.Table, "table"),
			ProductToParams(conf.Products.Chair, "chair"),
		},
		Limits: lp.ResourceLimits{
			TotalHours: conf.Limits.TotalHours,
			TotalWood:  conf.Limits.TotalWood,
		},
	}
}

// PolicyToLP converts the policy configuration into an lp.Policy. The prefer
// predicate is compiled by the caller and may be nil.
func PolicyToLP(policy config.PolicyConfig, prefer func(lp.Candidate) bool) lp.Policy {
	policy.Normalize()
	return lp.Policy{
		Kind:                 lp.PolicyKind(policy.Kind),
		PreferMultipleTables: policy.PreferMultipleTables,
		Prefer:               prefer,
		CornerProfit:         lp.CornerProfit(policy.CornerProfit),
		MaxGridCells:         policy.MaxGridCells,
	}
}

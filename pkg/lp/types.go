// Package lp resolves the two resource constraints of the workshop production
// problem and selects the most profitable production mix under a configurable
// policy. Everything in this package is a pure function of its inputs.
package lp

import (
	"fmt"

	"github.com/iwvelando/production-optimizer/pkg/mathutil"
)

// ProductParams describes the profit and per-unit resource usage of one product.
type ProductParams struct {
	Name         string  `json:"name"`
	Profit       float64 `json:"profit"`
	HoursPerUnit float64 `json:"hoursPerUnit"`
	WoodPerUnit  float64 `json:"woodPerUnit"`
}

// ResourceLimits holds the available labor hours and wood stock.
type ResourceLimits struct {
	TotalHours float64 `json:"totalHours"`
	TotalWood  float64 `json:"totalWood"`
}

// Problem is one evaluation request. Products[0] is the x product (tables) and
// Products[1] is the y product (chairs).
type Problem struct {
	Products [2]ProductParams `json:"products"`
	Limits   ResourceLimits   `json:"limits"`
}

// Point is a production quantity pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Candidate is a point together with its derived profit and resource usage.
type Candidate struct {
	Point
	Profit    float64 `json:"profit"`
	HoursUsed float64 `json:"hoursUsed"`
	WoodUsed  float64 `json:"woodUsed"`
}

// Evaluate computes profit and resource usage for a point.
func (p Problem) Evaluate(pt Point) Candidate {
	a, b := p.Products[0], p.Products[1]
	return Candidate{
		Point:     pt,
		Profit:    a.Profit*pt.X + b.Profit*pt.Y,
		HoursUsed: a.HoursPerUnit*pt.X + b.HoursPerUnit*pt.Y,
		WoodUsed:  a.WoodPerUnit*pt.X + b.WoodPerUnit*pt.Y,
	}
}

// Fits reports whether a candidate stays within both resource limits.
func (p Problem) Fits(c Candidate) bool {
	return mathutil.AtMost(c.HoursUsed, p.Limits.TotalHours) &&
		mathutil.AtMost(c.WoodUsed, p.Limits.TotalWood)
}

// Validate rejects parameters the resolver cannot reason about. Zero per-unit
// usage is allowed and treated as an unbounded axis.
func (p Problem) Validate() error {
	for i, product := range p.Products {
		label := product.Name
		if label == "" {
			label = fmt.Sprintf("product %d", i+1)
		}
		fields := []struct {
			name  string
			value float64
		}{
			{"profit", product.Profit},
			{"hoursPerUnit", product.HoursPerUnit},
			{"woodPerUnit", product.WoodPerUnit},
		}
		for _, f := range fields {
			if !mathutil.IsFinite(f.value) {
				return fmt.Errorf("%w: %s %s is not finite", ErrInvalidInput, label, f.name)
			}
		}
		if product.HoursPerUnit < 0 || product.WoodPerUnit < 0 {
			return fmt.Errorf("%w: %s has negative resource usage", ErrInvalidInput, label)
		}
	}
	if !mathutil.IsFinite(p.Limits.TotalHours) || p.Limits.TotalHours <= 0 {
		return fmt.Errorf("%w: total hours must be positive, got %v", ErrInvalidInput, p.Limits.TotalHours)
	}
	if !mathutil.IsFinite(p.Limits.TotalWood) || p.Limits.TotalWood <= 0 {
		return fmt.Errorf("%w: total wood must be positive, got %v", ErrInvalidInput, p.Limits.TotalWood)
	}
	return nil
}

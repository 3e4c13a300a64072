package lp

import (
	"fmt"

	"github.com/iwvelando/production-optimizer/pkg/constants"
)

// PolicyKind selects how candidate points are generated.
type PolicyKind string

const (
	// PolicyGrid enumerates every integer point with x ≥ 1 and y ≥ 1.
	PolicyGrid PolicyKind = constants.PolicyGrid
	// PolicyCorner evaluates only the vertices of the feasible region.
	PolicyCorner PolicyKind = constants.PolicyCorner
)

// CornerProfit selects which profit the corner policy reports for its floored point.
type CornerProfit string

const (
	// CornerProfitVertex reports the profit at the real-valued vertex.
	CornerProfitVertex CornerProfit = constants.CornerProfitVertex
	// CornerProfitFloored reports the profit of the floored coordinates.
	CornerProfitFloored CornerProfit = constants.CornerProfitFloored
)

// Policy configures candidate generation and selection.
//
// PreferMultipleTables is a workshop house rule: among grid candidates the
// best point with x > 1 wins, and the unrestricted best is used only when no
// such point exists.
//
// Prefer is an optional extra predicate with the same prefer-then-fall-back
// semantics. When both are set a candidate must satisfy both to be preferred.
type Policy struct {
	Kind                 PolicyKind
	PreferMultipleTables bool
	Prefer               func(Candidate) bool
	CornerProfit         CornerProfit
	MaxGridCells         int
}

// DefaultPolicy is a plain maximum-profit grid search.
func DefaultPolicy() Policy {
	return Policy{
		Kind:         PolicyGrid,
		CornerProfit: CornerProfitFloored,
		MaxGridCells: constants.DefaultMaxGridCells,
	}
}

func (p Policy) withDefaults() Policy {
	if p.Kind == "" {
		p.Kind = PolicyGrid
	}
	if p.CornerProfit == "" {
		p.CornerProfit = CornerProfitFloored
	}
	if p.MaxGridCells <= 0 {
		p.MaxGridCells = constants.DefaultMaxGridCells
	}
	return p
}

// Validate returns an error for unknown policy or profit-mode names.
func (p Policy) Validate() error {
	switch p.Kind {
	case PolicyGrid, PolicyCorner, "":
	default:
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, p.Kind)
	}
	switch p.CornerProfit {
	case CornerProfitVertex, CornerProfitFloored, "":
	default:
		return fmt.Errorf("%w: unknown corner profit mode %q", ErrInvalidInput, p.CornerProfit)
	}
	return nil
}

func (p Policy) hasPreference() bool {
	return p.PreferMultipleTables || p.Prefer != nil
}

func (p Policy) prefers(c Candidate) bool {
	if p.PreferMultipleTables && c.X <= 1 {
		return false
	}
	if p.Prefer != nil && !p.Prefer(c) {
		return false
	}
	return true
}

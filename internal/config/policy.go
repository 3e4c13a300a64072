package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/production-optimizer/pkg/constants"
)

// PolicyConfig selects how the optimizer generates and ranks candidates.
type PolicyConfig struct {
	Kind                 string `yaml:"kind,omitempty" mapstructure:"kind"`
	PreferMultipleTables bool   `yaml:"preferMultipleTables,omitempty" mapstructure:"preferMultipleTables"`
	PreferWhen           string `yaml:"preferWhen,omitempty" mapstructure:"preferWhen"`
	CornerProfit         string `yaml:"cornerProfit,omitempty" mapstructure:"cornerProfit"`
	MaxGridCells         int    `yaml:"maxGridCells,omitempty" mapstructure:"maxGridCells"`
}

// CanonicalPolicyKind returns the canonical identifier for a policy name.
func CanonicalPolicyKind(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.PolicyGrid
	}
	switch strings.ToLower(trimmed) {
	case "grid", "exhaustive", "integer", "integer-grid", "integer_grid":
		return constants.PolicyGrid
	case "corner", "corners", "vertex", "corner-point", "corner_point", "cornerpoint":
		return constants.PolicyCorner
	default:
		return strings.ToLower(trimmed)
	}
}

// CanonicalCornerProfit returns the canonical identifier for a corner profit mode.
func CanonicalCornerProfit(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.CornerProfitFloored
	}
	switch strings.ToLower(trimmed) {
	case "vertex", "continuous", "relaxation":
		return constants.CornerProfitVertex
	case "floored", "floor", "integer":
		return constants.CornerProfitFloored
	default:
		return strings.ToLower(trimmed)
	}
}

// Normalize ensures defaults and canonical values are applied before validation.
func (p *PolicyConfig) Normalize() {
	if p == nil {
		return
	}
	p.Kind = CanonicalPolicyKind(p.Kind)
	p.CornerProfit = CanonicalCornerProfit(p.CornerProfit)
	p.PreferWhen = strings.TrimSpace(p.PreferWhen)
	if p.MaxGridCells <= 0 {
		p.MaxGridCells = constants.DefaultMaxGridCells
	}
}

// Validate returns an error when the policy configuration is unsupported.
func (p *PolicyConfig) Validate() error {
	if p == nil {
		return fmt.Errorf("policy configuration cannot be nil")
	}

	p.Normalize()

	switch p.Kind {
	case constants.PolicyGrid, constants.PolicyCorner:
	default:
		return fmt.Errorf("policy kind %q is not supported", p.Kind)
	}

	switch p.CornerProfit {
	case constants.CornerProfitVertex, constants.CornerProfitFloored:
	default:
		return fmt.Errorf("corner profit mode %q is not supported", p.CornerProfit)
	}

	return nil
}

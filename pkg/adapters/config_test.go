package adapters

import (
	"testing"

	"github.com/iwvelando/production-optimizer/internal/config"
	"github.com/iwvelando/production-optimizer/pkg/constants"
	"github.com/iwvelando/production-optimizer/pkg/lp"
)

func workshopConfig() *config.Configuration {
	return &config.Configuration{
		Products: config.ProductsConfig{
			Table: config.ProductConfig{Name: "Meja", Profit: 750000, HoursPerUnit: 6, WoodPerUnit: 4},
			Chair: config.ProductConfig{Name: "Kursi", Profit: 300000, HoursPerUnit: 2, WoodPerUnit: 1.5},
		},
		Limits: config.LimitsConfig{TotalHours: 240, TotalWood: 120},
		Policy: config.PolicyConfig{Kind: "grid"},
	}
}

func TestConfigToProblem(t *testing.T) {
	problem := ConfigToProblem(workshopConfig())

	if problem.Products[0].Name != "Meja" || problem.Products[1].Name != "Kursi" {
		t.Fatalf("products out of order: %+v", problem.Products)
	}
	if problem.Products[0].Profit != 750000 || problem.Products[0].HoursPerUnit != 6 || problem.Products[0].WoodPerUnit != 4 {
		t.Errorf("table parameters not copied: %+v", problem.Products[0])
	}
	if problem.Products[1].WoodPerUnit != 1.5 {
		t.Errorf("chair wood per unit = %v, expected 1.5", problem.Products[1].WoodPerUnit)
	}
	if problem.Limits.TotalHours != 240 || problem.Limits.TotalWood != 120 {
		t.Errorf("limits not copied: %+v", problem.Limits)
	}
}

func TestConfigToProblemNil(t *testing.T) {
	problem := ConfigToProblem(nil)
	if problem != (lp.Problem{}) {
		t.Errorf("expected zero problem for nil configuration, got %+v", problem)
	}
}

func TestProductToParamsDefaultsName(t *testing.T) {
	params := ProductToParams(config.ProductConfig{Profit: 1, HoursPerUnit: 1, WoodPerUnit: 1}, "chair")
	if params.Name != "chair" {
		t.Errorf("expected role name fallback, got %q", params.Name)
	}
}

func TestPolicyToLP(t *testing.T) {
	tests := []struct {
		name     string
		policy   config.PolicyConfig
		kind     lp.PolicyKind
		profit   lp.CornerProfit
		maxCells int
	}{
		{
			name:     "Empty policy uses defaults",
			policy:   config.PolicyConfig{},
			kind:     lp.PolicyGrid,
			profit:   lp.CornerProfitFloored,
			maxCells: constants.DefaultMaxGridCells,
		},
		{
			name:     "Corner alias with vertex profit",
			policy:   config.PolicyConfig{Kind: "Vertex", CornerProfit: "continuous", MaxGridCells: 50},
			kind:     lp.PolicyCorner,
			profit:   lp.CornerProfitVertex,
			maxCells: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := PolicyToLP(tt.policy, nil)
			if policy.Kind != tt.kind {
				t.Errorf("kind = %s, expected %s", policy.Kind, tt.kind)
			}
			if policy.CornerProfit != tt.profit {
				t.Errorf("corner profit = %s, expected %s", policy.CornerProfit, tt.profit)
			}
			if policy.MaxGridCells != tt.maxCells {
				t.Errorf("max grid cells = %d, expected %d", policy.MaxGridCells, tt.maxCells)
			}
			if policy.Prefer != nil {
				t.Errorf("expected no predicate")
			}
		})
	}
}

func TestPolicyToLPCarriesPreference(t *testing.T) {
	calls := 0
	prefer := func(c lp.Candidate) bool {
		calls++
		return c.Y <= 50
	}

	conf := workshopConfig()
	conf.Policy.PreferMultipleTables = true
	policy := PolicyToLP(conf.Policy, prefer)

	if !policy.PreferMultipleTables {
		t.Fatalf("expected preferMultipleTables to carry over")
	}

	res := lp.Optimize(ConfigToProblem(conf), policy)
	if calls == 0 {
		t.Fatalf("expected predicate to be consulted")
	}
	if res.Best.X != 12 || res.Best.Y != 48 {
		t.Errorf("expected preferred point (12, 48), got (%v, %v)", res.Best.X, res.Best.Y)
	}
}

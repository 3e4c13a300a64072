// Package optimization provides shared data structures for optimization results.
package optimization

import (
	"github.com/iwvelando/production-optimizer/pkg/format"
	"github.com/iwvelando/production-optimizer/pkg/lp"
	"github.com/iwvelando/production-optimizer/pkg/mathutil"
)

// Summary captures the selected production mix in display-ready form.
type Summary struct {
	Policy        string   `json:"policy"`
	Status        string   `json:"status"`
	TableName     string   `json:"tableName"`
	ChairName     string   `json:"chairName"`
	Tables        float64  `json:"tables"`
	Chairs        float64  `json:"chairs"`
	Profit        float64  `json:"profit"`
	HoursUsed     float64  `json:"hoursUsed"`
	WoodUsed      float64  `json:"woodUsed"`
	HoursSlack    float64  `json:"hoursSlack"`
	WoodSlack     float64  `json:"woodSlack"`
	Binding       []string `json:"binding,omitempty"`
	Preferred     bool     `json:"preferred,omitempty"`
	Feasible      int      `json:"feasible"`
	Notes         []string `json:"notes,omitempty"`
	ProfitDisplay string   `json:"profitDisplay,omitempty"`
}

// Summarize condenses a result for display. A constraint is binding when the
// selected point uses its whole allowance.
func Summarize(problem lp.Problem, res lp.Result, currencySymbol string) Summary {
	best := res.Best
	s := Summary{
		Policy:        string(res.Policy),
		Status:        string(res.Status),
		TableName:     problem.Products[0].Name,
		ChairName:     problem.Products[1].Name,
		Tables:        best.X,
		Chairs:        best.Y,
		Profit:        best.Profit,
		HoursUsed:     best.HoursUsed,
		WoodUsed:      best.WoodUsed,
		Preferred:     res.Preferred,
		Feasible:      len(res.Candidates),
		Notes:         res.Notes,
		ProfitDisplay: format.Currency(currencySymbol, best.Profit),
	}
	if res.Policy == lp.PolicyCorner {
		s.Feasible = len(res.Corners)
	}
	if !res.Found() {
		return s
	}

	s.HoursSlack = mathutil.Round(problem.Limits.TotalHours - best.HoursUsed)
	s.WoodSlack = mathutil.Round(problem.Limits.TotalWood - best.WoodUsed)
	if mathutil.IsZero(s.HoursSlack) {
		s.Binding = append(s.Binding, "hours")
	}
	if mathutil.IsZero(s.WoodSlack) {
		s.Binding = append(s.Binding, "wood")
	}
	return s
}

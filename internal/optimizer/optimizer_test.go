package optimizer

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/production-optimizer/internal/config"
	"github.com/iwvelando/production-optimizer/pkg/lp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func workshopConfig(hours, wood float64) *config.Configuration {
	return &config.Configuration{
		Output: config.OutputConfig{Format: "pretty", CurrencySymbol: "Rp", MaxRows: 10},
		Products: config.ProductsConfig{
			Table: config.ProductConfig{Name: "Meja", Profit: 750000, HoursPerUnit: 6, WoodPerUnit: 4},
			Chair: config.ProductConfig{Name: "Kursi", Profit: 300000, HoursPerUnit: 2, WoodPerUnit: 1.5},
		},
		Limits: config.LimitsConfig{TotalHours: hours, TotalWood: wood},
		Policy: config.PolicyConfig{Kind: "grid"},
	}
}

func mustRun(t *testing.T, conf *config.Configuration) *Report {
	t.Helper()
	runner, err := NewRunner(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}
	return runner.Run()
}

func TestRunnerWorkshopGrid(t *testing.T) {
	report := mustRun(t, workshopConfig(240, 120))

	if report.Result.Status != lp.StatusOptimal {
		t.Fatalf("expected optimal, got %s", report.Result.Status)
	}
	if report.Result.Best.X != 1 || report.Result.Best.Y != 77 {
		t.Fatalf("expected (1, 77), got (%v, %v)", report.Result.Best.X, report.Result.Best.Y)
	}
	if report.Summary.ProfitDisplay != "Rp 23,850,000" {
		t.Errorf("unexpected profit display %q", report.Summary.ProfitDisplay)
	}
	if report.Intercepts.HoursX != 40 || report.Intercepts.WoodY != 80 {
		t.Errorf("unexpected intercepts %+v", report.Intercepts)
	}
	if len(report.Corners) == 0 || len(report.Boundary) != 3 {
		t.Errorf("expected corners and three boundary series, got %d corners and %d series",
			len(report.Corners), len(report.Boundary))
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", report.Warnings)
	}
}

func TestRunnerPreferMultipleTables(t *testing.T) {
	conf := workshopConfig(360, 160)
	conf.Policy.PreferMultipleTables = true

	report := mustRun(t, conf)

	if report.Result.Best.X != 2 || report.Result.Best.Y != 101 || report.Result.Best.Profit != 31800000 {
		t.Fatalf("expected (2, 101) at 31,800,000, got %+v", report.Result.Best)
	}
	if !report.Summary.Preferred {
		t.Errorf("expected summary to mark the preferred point")
	}
}

func TestRunnerPreferWhen(t *testing.T) {
	conf := workshopConfig(240, 120)
	conf.Policy.PreferWhen = "y <= 50"

	report := mustRun(t, conf)

	if report.Result.Best.X != 12 || report.Result.Best.Y != 48 {
		t.Fatalf("expected (12, 48), got (%v, %v)", report.Result.Best.X, report.Result.Best.Y)
	}
	if report.Result.Best.Profit != 23400000 {
		t.Errorf("expected profit 23,400,000, got %v", report.Result.Best.Profit)
	}
}

func TestRunnerCornerVertexProfit(t *testing.T) {
	conf := workshopConfig(360, 160)
	conf.Policy.Kind = "corner"
	conf.Policy.CornerProfit = "vertex"

	report := mustRun(t, conf)

	if report.Result.Best.X != 0 || report.Result.Best.Y != 106 {
		t.Fatalf("expected floored point (0, 106), got (%v, %v)", report.Result.Best.X, report.Result.Best.Y)
	}
	if report.Result.Best.Profit != 32000000 {
		t.Errorf("expected vertex profit 32,000,000, got %v", report.Result.Best.Profit)
	}
	if report.Intersection == nil || report.IntersectionErr == nil {
		t.Errorf("expected intersection outside the first quadrant to be reported")
	}
}

func TestRunnerDegenerateSystem(t *testing.T) {
	conf := workshopConfig(100, 40)
	conf.Products.Table = config.ProductConfig{Name: "A", Profit: 30, HoursPerUnit: 2, WoodPerUnit: 1}
	conf.Products.Chair = config.ProductConfig{Name: "B", Profit: 20, HoursPerUnit: 4, WoodPerUnit: 2}

	report := mustRun(t, conf)

	if !errors.Is(report.IntersectionErr, lp.ErrDegenerateSystem) {
		t.Fatalf("expected degenerate intersection, got %v", report.IntersectionErr)
	}
	if report.Intersection != nil {
		t.Errorf("degenerate system should carry no intersection point")
	}
	if report.Result.Best.X != 38 || report.Result.Best.Y != 1 {
		t.Errorf("expected (38, 1), got (%v, %v)", report.Result.Best.X, report.Result.Best.Y)
	}
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "parallel") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a parallel-constraints warning, got %v", report.Warnings)
	}
}

func TestRunnerSearchLimitLogsWarning(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	conf := workshopConfig(240, 120)
	conf.Policy.MaxGridCells = 10

	runner, err := NewRunner(zap.New(core), conf)
	if err != nil {
		t.Fatalf("NewRunner returned error: %v", err)
	}
	report := runner.Run()

	if report.Result.Status != lp.StatusSearchLimit {
		t.Fatalf("expected search_limit, got %s", report.Result.Status)
	}
	if logs.FilterMessage("no eligible production point").Len() != 1 {
		t.Errorf("expected a warning log for the sentinel result")
	}
}

func TestNewRunnerRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Configuration)
	}{
		{"Negative usage", func(c *config.Configuration) { c.Products.Table.HoursPerUnit = -1 }},
		{"Zero hours", func(c *config.Configuration) { c.Limits.TotalHours = 0 }},
		{"Unknown policy", func(c *config.Configuration) { c.Policy.Kind = "simplex" }},
		{"Bad preference", func(c *config.Configuration) { c.Policy.PreferWhen = "x >" }},
		{"Non-bool preference", func(c *config.Configuration) { c.Policy.PreferWhen = "x + y" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := workshopConfig(240, 120)
			tt.mutate(conf)
			if _, err := NewRunner(nil, conf); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := NewRunner(nil, nil); err == nil {
		t.Fatalf("expected error for nil configuration")
	}
}

func TestCompilePreference(t *testing.T) {
	prefer, err := CompilePreference("")
	if err != nil || prefer != nil {
		t.Fatalf("empty expression should yield nil predicate, got %v", err)
	}

	prefer, err = CompilePreference("x > 1 && wood <= 100.0")
	if err != nil {
		t.Fatalf("CompilePreference returned error: %v", err)
	}

	tests := []struct {
		candidate lp.Candidate
		expected  bool
	}{
		{lp.Candidate{Point: lp.Point{X: 2, Y: 1}, WoodUsed: 50}, true},
		{lp.Candidate{Point: lp.Point{X: 1, Y: 1}, WoodUsed: 50}, false},
		{lp.Candidate{Point: lp.Point{X: 5, Y: 1}, WoodUsed: 101}, false},
	}
	for _, tt := range tests {
		if got := prefer(tt.candidate); got != tt.expected {
			t.Errorf("prefer(%+v) = %v, expected %v", tt.candidate, got, tt.expected)
		}
	}
}

func TestReportViewIsJSONSafe(t *testing.T) {
	conf := workshopConfig(240, 120)
	conf.Products.Chair.HoursPerUnit = 0

	report := mustRun(t, conf)
	view := report.View(5)

	if view.Intercepts.HoursY != nil {
		t.Errorf("expected unbounded hours/y intercept to be null")
	}
	if view.Intercepts.HoursX == nil || *view.Intercepts.HoursX != 40 {
		t.Errorf("expected hours/x intercept of 40")
	}
	if len(view.Result.Candidates) != 5 || !view.Truncated {
		t.Errorf("expected candidates truncated to 5, got %d", len(view.Result.Candidates))
	}
	if view.CandidateCount != len(report.Result.Candidates) {
		t.Errorf("candidate count should reflect the full list")
	}
	if _, err := json.Marshal(view); err != nil {
		t.Fatalf("view should marshal to JSON: %v", err)
	}
}

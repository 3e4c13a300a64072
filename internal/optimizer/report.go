package optimizer

import (
	"math"
	"time"

	"github.com/iwvelando/production-optimizer/pkg/lp"
	"github.com/iwvelando/production-optimizer/pkg/optimization"
)

// Report is the outcome of one Run: the optimizer result together with the
// resolver diagnostics needed to explain it.
type Report struct {
	Problem         lp.Problem
	Result          lp.Result
	Intercepts      lp.Intercepts
	Intersection    *lp.Point
	IntersectionErr error
	Corners         []lp.Point
	Boundary        []lp.Series
	Summary         optimization.Summary
	Warnings        []string
	Duration        time.Duration
}

// InterceptsView is the JSON form of lp.Intercepts. Unbounded intercepts are null.
type InterceptsView struct {
	HoursX *float64 `json:"hoursX"`
	HoursY *float64 `json:"hoursY"`
	WoodX  *float64 `json:"woodX"`
	WoodY  *float64 `json:"woodY"`
}

// ReportView is the JSON-safe representation of a Report.
type ReportView struct {
	Problem          lp.Problem           `json:"problem"`
	Result           lp.Result            `json:"result"`
	CandidateCount   int                  `json:"candidateCount"`
	Truncated        bool                 `json:"truncated,omitempty"`
	Summary          optimization.Summary `json:"summary"`
	Intercepts       InterceptsView       `json:"intercepts"`
	UnboundedAxes    []string             `json:"unboundedAxes,omitempty"`
	Intersection     *lp.Point            `json:"intersection,omitempty"`
	IntersectionNote string               `json:"intersectionNote,omitempty"`
	Corners          []lp.Point           `json:"corners"`
	Boundary         []lp.Series          `json:"boundary,omitempty"`
	Warnings         []string             `json:"warnings,omitempty"`
	DurationMS       float64              `json:"durationMs"`
}

// View converts the report into its JSON form, keeping at most maxCandidates
// grid candidates. A non-positive maxCandidates keeps them all.
func (r Report) View(maxCandidates int) ReportView {
	view := ReportView{
		Problem:        r.Problem,
		Result:         r.Result,
		CandidateCount: len(r.Result.Candidates),
		Summary:        r.Summary,
		Intercepts: InterceptsView{
			HoursX: finiteOrNil(r.Intercepts.HoursX),
			HoursY: finiteOrNil(r.Intercepts.HoursY),
			WoodX:  finiteOrNil(r.Intercepts.WoodX),
			WoodY:  finiteOrNil(r.Intercepts.WoodY),
		},
		UnboundedAxes: r.Intercepts.UnboundedAxes(),
		Intersection:  r.Intersection,
		Corners:       r.Corners,
		Boundary:      r.Boundary,
		Warnings:      r.Warnings,
		DurationMS:    float64(r.Duration.Microseconds()) / 1000,
	}
	if r.IntersectionErr != nil {
		view.IntersectionNote = r.IntersectionErr.Error()
	}
	if maxCandidates > 0 && len(r.Result.Candidates) > maxCandidates {
		view.Result.Candidates = r.Result.Candidates[:maxCandidates]
		view.Truncated = true
	}
	return view
}

func finiteOrNil(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

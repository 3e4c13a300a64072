package lp

import (
	"fmt"
	"strings"
)

// Result is the outcome of one optimization. When Status is not StatusOptimal,
// Best is the (0, 0) sentinel with zero profit.
type Result struct {
	Status     Status      `json:"status"`
	Policy     PolicyKind  `json:"policy"`
	Best       Candidate   `json:"best"`
	Vertex     *Candidate  `json:"vertex,omitempty"`
	Preferred  bool        `json:"preferred,omitempty"`
	Candidates []Candidate `json:"candidates,omitempty"`
	Corners    []Candidate `json:"corners,omitempty"`
	Notes      []string    `json:"notes,omitempty"`
}

// Found reports whether an eligible point was selected.
func (r Result) Found() bool {
	return r.Status == StatusOptimal
}

// Err returns the sentinel error matching the result status, or nil.
func (r Result) Err() error {
	return r.Status.Err()
}

func noSolution(status Status, note string) Result {
	res := Result{Status: status}
	if note != "" {
		res.Notes = []string{note}
	}
	return res
}

// Optimize selects the most profitable production mix under policy. It never
// panics or returns an error: degenerate or invalid input yields the no-solution
// sentinel with a Status and explanatory Notes.
func Optimize(problem Problem, policy Policy) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			res = noSolution(StatusInvalidInput, fmt.Sprintf("optimization aborted: %v", rec))
			res.Policy = policy.Kind
		}
	}()

	if err := policy.Validate(); err != nil {
		return noSolution(StatusInvalidInput, err.Error())
	}
	policy = policy.withDefaults()

	if err := problem.Validate(); err != nil {
		res = noSolution(StatusInvalidInput, err.Error())
		res.Policy = policy.Kind
		return res
	}

	if unbounded := unboundedProducts(problem); len(unbounded) > 0 {
		res = noSolution(StatusUnbounded, fmt.Sprintf("%s: %s uses neither hours nor wood",
			ErrUnboundedAxis, strings.Join(unbounded, ", ")))
		res.Policy = policy.Kind
		return res
	}

	switch policy.Kind {
	case PolicyCorner:
		res = evaluateCorners(problem, policy)
	default:
		res = searchGrid(problem, policy)
	}
	res.Policy = policy.Kind
	return res
}

func unboundedProducts(problem Problem) []string {
	var names []string
	for i, p := range problem.Products {
		if p.HoursPerUnit == 0 && p.WoodPerUnit == 0 {
			name := p.Name
			if name == "" {
				name = fmt.Sprintf("product %d", i+1)
			}
			names = append(names, name)
		}
	}
	return names
}

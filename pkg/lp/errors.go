package lp

import "errors"

var (
	// ErrDegenerateSystem means the constraint lines are parallel or coincident.
	ErrDegenerateSystem = errors.New("constraint lines have no unique intersection")

	// ErrOutsideFirstQuadrant means the lines cross at a negative coordinate.
	ErrOutsideFirstQuadrant = errors.New("constraint intersection lies outside the first quadrant")

	// ErrUnboundedAxis means a product consumes none of either resource.
	ErrUnboundedAxis = errors.New("production axis is unbounded")

	// ErrNoFeasiblePoint means no candidate satisfied both constraints.
	ErrNoFeasiblePoint = errors.New("no feasible production point")

	// ErrInvalidInput means the parameters were rejected before solving.
	ErrInvalidInput = errors.New("invalid optimization input")

	// ErrSearchLimit means the integer grid exceeded the configured cell budget.
	ErrSearchLimit = errors.New("grid search exceeds cell limit")
)

// Status summarizes how an optimization ended.
type Status string

const (
	StatusOptimal         Status = "optimal"
	StatusNoFeasiblePoint Status = "no_feasible_point"
	StatusUnbounded       Status = "unbounded"
	StatusInvalidInput    Status = "invalid_input"
	StatusSearchLimit     Status = "search_limit"
)

// Err maps a status back to its sentinel error, or nil for StatusOptimal.
func (s Status) Err() error {
	switch s {
	case StatusOptimal:
		return nil
	case StatusNoFeasiblePoint:
		return ErrNoFeasiblePoint
	case StatusUnbounded:
		return ErrUnboundedAxis
	case StatusSearchLimit:
		return ErrSearchLimit
	default:
		return ErrInvalidInput
	}
}

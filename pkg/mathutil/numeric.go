// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/production-optimizer/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within Epsilon)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.Epsilon
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	if math.IsInf(val1, 0) || math.IsInf(val2, 0) {
		return val1 == val2
	}
	return math.Abs(val1-val2) <= tolerance
}

// AtMost reports whether used fits within limit, allowing a relative slack of
// Epsilon so that vertices computed in floating point are not rejected.
func AtMost(used, limit float64) bool {
	return used <= limit+constants.Epsilon*math.Max(1, math.Abs(limit))
}

// SafeDivide returns num/den, or +Inf when den is zero. A zero numerator over a
// zero denominator is also treated as unbounded.
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return math.Inf(1)
	}
	return num / den
}

// FloorWithSlack floors val after adding FloorSlack, guarding against values
// that sit a rounding error below an integer.
func FloorWithSlack(val float64) float64 {
	return math.Floor(val + constants.FloorSlack)
}

// MinFinite returns the smallest finite value, or +Inf when none are finite.
func MinFinite(values ...float64) float64 {
	min := math.Inf(1)
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
	}
	return min
}

// MaxFinite returns the largest finite value, or 0 when none are finite.
func MaxFinite(values ...float64) float64 {
	max := 0.0
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsInf(val, 0) && !math.IsNaN(val)
}

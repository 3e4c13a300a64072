package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 23850000.004, 23850000.00},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Zero tolerance no match", 1.0, 1.001, 0.0, false},
		{"Both infinite", inf, inf, 0.1, true},
		{"One infinite", inf, 1e300, 0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestAtMost(t *testing.T) {
	tests := []struct {
		name     string
		used     float64
		limit    float64
		expected bool
	}{
		{"Below limit", 119.5, 120, true},
		{"Exactly at limit", 120, 120, true},
		{"Float noise above limit", 120 + 1e-12, 120, true},
		{"Clearly above limit", 120.5, 120, false},
		{"Zero limit", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AtMost(tt.used, tt.limit); got != tt.expected {
				t.Errorf("AtMost(%v, %v) = %v, expected %v", tt.used, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestSafeDivide(t *testing.T) {
	if got := SafeDivide(240, 6); got != 40 {
		t.Fatalf("SafeDivide(240, 6) = %v, expected 40", got)
	}
	if got := SafeDivide(240, 0); !math.IsInf(got, 1) {
		t.Fatalf("SafeDivide(240, 0) = %v, expected +Inf", got)
	}
	if got := SafeDivide(0, 0); !math.IsInf(got, 1) {
		t.Fatalf("SafeDivide(0, 0) = %v, expected +Inf", got)
	}
}

func TestFloorWithSlack(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{19.9999999999, 20},
		{19.5, 19},
		{106.6666666, 106},
		{0, 0},
	}

	for _, tt := range tests {
		if got := FloorWithSlack(tt.input); got != tt.expected {
			t.Errorf("FloorWithSlack(%v) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestMinMaxFinite(t *testing.T) {
	inf := math.Inf(1)

	if got := MinFinite(40, 30, inf); got != 30 {
		t.Errorf("MinFinite = %v, expected 30", got)
	}
	if got := MinFinite(inf, inf); !math.IsInf(got, 1) {
		t.Errorf("MinFinite of infinities = %v, expected +Inf", got)
	}
	if got := MaxFinite(40, inf, 30); got != 40 {
		t.Errorf("MaxFinite = %v, expected 40", got)
	}
	if got := MaxFinite(inf); got != 0 {
		t.Errorf("MaxFinite of infinities = %v, expected 0", got)
	}
	if IsFinite(math.NaN()) || IsFinite(inf) || !IsFinite(1) {
		t.Error("IsFinite returned an unexpected result")
	}
}

package integration

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/iwvelando/production-optimizer/pkg/lp"
	"github.com/iwvelando/production-optimizer/pkg/testutil"
)

// TestMain is a simple test runner for debugging
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestPerformance checks that a full grid search stays interactive.
func TestPerformance(t *testing.T) {
	problem := testutil.WorkshopProblem(2400, 1200)

	start := time.Now()
	res := lp.Optimize(problem, lp.DefaultPolicy())
	elapsed := time.Since(start)

	if res.Status != lp.StatusOptimal {
		t.Fatalf("expected optimal status, got %s", res.Status)
	}
	t.Logf("grid of %d feasible candidates searched in %v", len(res.Candidates), elapsed)

	if elapsed > 5*time.Second {
		t.Errorf("grid search took %v, expected well under 5s", elapsed)
	}
}

// TestConcurrentOptimize runs the optimizer from many goroutines and checks
// that every call sees the same answer.
func TestConcurrentOptimize(t *testing.T) {
	problem := testutil.WorkshopProblem(360, 160)
	policy := lp.DefaultPolicy()
	policy.PreferMultipleTables = true

	want := lp.Optimize(problem, policy).Best

	var wg sync.WaitGroup
	results := make([]lp.Candidate, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lp.Optimize(problem, policy).Best
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("goroutine %d: expected %+v, got %+v", i, want, got)
		}
	}
}

// TestDataConsistency verifies repeated runs are deterministic.
func TestDataConsistency(t *testing.T) {
	problem := testutil.WorkshopProblem(240, 120)

	first := lp.Optimize(problem, lp.DefaultPolicy())
	second := lp.Optimize(problem, lp.DefaultPolicy())

	if len(first.Candidates) != len(second.Candidates) {
		t.Fatalf("candidate counts differ: %d vs %d", len(first.Candidates), len(second.Candidates))
	}
	for i := range first.Candidates {
		if first.Candidates[i] != second.Candidates[i] {
			t.Fatalf("candidate %d differs: %+v vs %+v", i, first.Candidates[i], second.Candidates[i])
		}
	}
	if first.Best != second.Best {
		t.Fatalf("best differs: %+v vs %+v", first.Best, second.Best)
	}
}

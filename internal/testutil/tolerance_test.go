package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireSymmetric(t *testing.T) {
	RequireSymmetric(t, []float64{0.1, 0.5, 1, 0.5, 0.1}, 0)
	RequireSymmetric(t, []float64{0.2, 0.7, 0.7, 0.2}, 0)
	RequireSymmetric(t, []float64{3}, 0)
	RequireSymmetric(t, nil, 0)
}

func TestSum(t *testing.T) {
	if got := Sum([]float64{0.25, 0.5, 0.25}); got != 1 {
		t.Fatalf("Sum = %v, want 1", got)
	}
	if got := Sum(nil); got != 0 {
		t.Fatalf("Sum(nil) = %v, want 0", got)
	}
}

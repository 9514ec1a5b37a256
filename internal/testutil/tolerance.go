package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireNaNPattern fails t if the NaN positions of got do not match wantNaN,
// or if any non-NaN element differs exactly from want.
func RequireNaNPattern(t *testing.T, got, want []float64, wantNaN []bool) {
	t.Helper()
	if len(got) != len(want) || len(got) != len(wantNaN) {
		t.Fatalf("length mismatch: got %d, want %d, pattern %d", len(got), len(want), len(wantNaN))
	}
	for i := range got {
		if wantNaN[i] {
			if !math.IsNaN(got[i]) {
				t.Fatalf("index %d: got %v, want NaN", i, got[i])
			}
			continue
		}
		if math.IsNaN(got[i]) {
			t.Fatalf("index %d: got NaN, want %v", i, want[i])
		}
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v exactly", i, got[i], want[i])
		}
	}
}

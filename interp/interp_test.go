package interp

import (
	"errors"
	"testing"
)

func TestLinearOnGridPoints(t *testing.T) {
	xp := []float64{0, 1, 2, 3}
	fp := []float64{10, 11, 12, 13}
	got, err := Linear(xp, xp, fp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range fp {
		if got[i] != fp[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], fp[i])
		}
	}
}

func TestLinearMidpoints(t *testing.T) {
	xp := []float64{0, 2}
	fp := []float64{0, 10}
	got, err := Linear([]float64{0.5, 1, 1.5}, xp, fp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{2.5, 5, 7.5}
	for i := range want {
		if d := got[i] - want[i]; d < -1e-12 || d > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinearClampsOutsideDomain(t *testing.T) {
	xp := []float64{1, 2}
	fp := []float64{5, 9}
	got, err := Linear([]float64{-10, 0.999, 2.001, 100}, xp, fp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{5, 5, 9, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinearRejectsBadGrids(t *testing.T) {
	if _, err := Linear([]float64{0}, nil, nil); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("empty grid: got %v", err)
	}
	if _, err := Linear([]float64{0}, []float64{0, 1}, []float64{0}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("length mismatch: got %v", err)
	}
	if _, err := Linear([]float64{0}, []float64{0, 0}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for non-increasing xp")
	}
}

func TestAt(t *testing.T) {
	got, err := At(1.5, []float64{1, 2}, []float64{0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
}

func TestAtSingleColumn(t *testing.T) {
	got, err := At(42, []float64{7}, []float64{3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Fatalf("got %v, want 3", got)
	}
}

package kit

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-spectra/ndim"
)

func TestClosestPairIndices(t *testing.T) {
	arr := ndim.FromSlice([]float64{0, 1, 2, 3, 3, 4, 5, 6, 1}, 9)

	pairs, _, err := ClosestPair(arr, PairIndices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []IndexPair{
		{A: []int{1}, B: []int{8}},
		{A: []int{3}, B: []int{4}},
	}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d: %v", len(pairs), len(want), pairs)
	}
	for _, w := range want {
		if !containsPair(pairs, w) {
			t.Fatalf("missing pair %v/%v in %v", w.A, w.B, pairs)
		}
	}
}

func TestClosestPairDistance(t *testing.T) {
	arr := ndim.FromSlice([]float64{0, 1, 2, 3, 3, 4, 5, 6, 1}, 9)

	_, dist, err := ClosestPair(arr, PairDistance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist != 0 {
		t.Fatalf("distance: got %v, want 0", dist)
	}
}

func TestClosestPair2D(t *testing.T) {
	arr := ndim.FromSlice([]float64{
		0, 10,
		10.5, 4,
	}, 2, 2)

	pairs, _, err := ClosestPair(arr, PairIndices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(pairs), pairs)
	}
	p := pairs[0]
	if !slices.Equal(p.A, []int{0, 1}) || !slices.Equal(p.B, []int{1, 0}) {
		t.Fatalf("got pair %v/%v, want [0 1]/[1 0]", p.A, p.B)
	}

	_, dist, err := ClosestPair(arr, PairDistance)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := dist - 0.5; d < -1e-12 || d > 1e-12 {
		t.Fatalf("distance: got %v, want 0.5", dist)
	}
}

func TestClosestPairTieSpansFullRange(t *testing.T) {
	// Every adjacent gap equals the value range seed, so all pairs tie.
	arr := ndim.FromSlice([]float64{0, 1}, 2)

	pairs, _, err := ClosestPair(arr, PairIndices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(pairs), pairs)
	}
}

func TestClosestPairUnknownMode(t *testing.T) {
	arr := ndim.FromSlice([]float64{1, 2}, 2)
	_, _, err := ClosestPair(arr, PairMode(0))
	if !errors.Is(err, ErrUnknownPairMode) {
		t.Fatalf("got %v, want ErrUnknownPairMode", err)
	}
}

func TestClosestPairDegenerateInputs(t *testing.T) {
	for _, n := range []int{0, 1} {
		arr := ndim.New(n)
		pairs, dist, err := ClosestPair(arr, PairIndices)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(pairs) != 0 || dist != 0 {
			t.Fatalf("n=%d: got %v / %v, want no pairs and zero distance", n, pairs, dist)
		}
	}
}

func containsPair(pairs []IndexPair, want IndexPair) bool {
	for _, p := range pairs {
		if slices.Equal(p.A, want.A) && slices.Equal(p.B, want.B) {
			return true
		}
		if slices.Equal(p.A, want.B) && slices.Equal(p.B, want.A) {
			return true
		}
	}
	return false
}

package kit

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-spectra/ndim"
)

// PairMode selects the result of [ClosestPair].
type PairMode int

const (
	// PairIndices requests the index pairs of the closest elements.
	PairIndices PairMode = iota + 1
	// PairDistance requests the closest distance itself.
	PairDistance
)

// String returns the mode name.
func (m PairMode) String() string {
	switch m {
	case PairIndices:
		return "indices"
	case PairDistance:
		return "distance"
	default:
		return fmt.Sprintf("PairMode(%d)", int(m))
	}
}

// IndexPair identifies two element positions in an N-D array.
// Pairs are unordered: (A, B) and (B, A) describe the same pair.
type IndexPair struct {
	A []int
	B []int
}

// ClosestPair finds the pair of positions holding the closest element values
// in arr. If multiple pairs are equally close, all of them are reported.
//
// With PairIndices the returned pairs are populated; with PairDistance only
// the distance is. Any other mode yields [ErrUnknownPairMode]. Arrays with
// fewer than two elements produce no pairs and zero distance.
//
// The search is exhaustive and quadratic in the element count. That is fine
// for the short axes it is used on; do not point it at megapixel arrays.
func ClosestPair(arr *ndim.Array, mode PairMode) ([]IndexPair, float64, error) {
	if mode != PairIndices && mode != PairDistance {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnknownPairMode, mode)
	}

	data := arr.Data()
	if len(data) < 2 {
		return nil, 0, nil
	}

	// Seed with the full value range so the first examined pair can at worst
	// tie it, mirroring the accumulation rule for exact ties below.
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	minDist := hi - lo

	var pairs [][2]int
	for i := range data {
		for j := range data {
			if i == j {
				continue
			}
			dist := math.Abs(data[i] - data[j])
			switch {
			case dist == minDist:
				if !slices.Contains(pairs, [2]int{j, i}) {
					pairs = append(pairs, [2]int{i, j})
				}
			case dist < minDist:
				minDist = dist
				pairs = [][2]int{{i, j}}
			}
		}
	}

	if mode == PairDistance {
		return nil, minDist, nil
	}

	out := make([]IndexPair, len(pairs))
	for i, p := range pairs {
		out[i] = IndexPair{A: arr.IndexOf(p[0]), B: arr.IndexOf(p[1])}
	}
	return out, 0, nil
}

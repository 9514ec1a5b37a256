package kit

import (
	"sort"

	"github.com/cwbudde/algo-spectra/interp"
)

// Diff computes the numerical derivative of yi with respect to xi.
//
// The samples are sorted by coordinate internally; first differences are
// evaluated at the midpoints between consecutive coordinates and mapped back
// onto the coordinate grid by linear interpolation, so the result has the
// same length as the inputs and is returned in the caller's original
// ordering. The process is iterated order times; order <= 0 returns an
// unchanged copy of yi.
//
// Inputs are not mutated.
func Diff(xi, yi []float64, order int) ([]float64, error) {
	n := len(xi)

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return xi[perm[a]] < xi[perm[b]] })

	sx := make([]float64, n)
	sy := make([]float64, n)
	for i, p := range perm {
		sx[i] = xi[p]
		sy[i] = yi[p]
	}

	var midpoints []float64
	if n > 1 {
		midpoints = make([]float64, n-1)
		for i := range midpoints {
			midpoints[i] = (sx[i+1] + sx[i]) / 2
		}
	}

	for k := 0; k < order; k++ {
		d := make([]float64, len(midpoints))
		for i := range d {
			d[i] = (sy[i+1] - sy[i]) / (sx[i+1] - sx[i])
		}
		var err error
		sy, err = interp.Linear(sx, midpoints, d)
		if err != nil {
			return nil, err
		}
	}

	out := make([]float64, n)
	for i, p := range perm {
		out[p] = sy[i]
	}
	return out, nil
}

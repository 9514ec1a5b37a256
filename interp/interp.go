package interp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyGrid      = errors.New("interp: grid must not be empty")
	ErrLengthMismatch = errors.New("interp: xp and fp must have same length")
)

// Linear evaluates the piecewise-linear interpolant (xp, fp) at every
// position in xq and returns the results in matching order.
//
// xp must be strictly increasing. Query positions outside [xp[0], xp[n-1]]
// are clamped to the corresponding edge value.
func Linear(xq, xp, fp []float64) ([]float64, error) {
	if err := validateGrid(xp, fp); err != nil {
		return nil, err
	}
	out := make([]float64, len(xq))
	for i, q := range xq {
		out[i] = at(q, xp, fp)
	}
	return out, nil
}

// At evaluates the piecewise-linear interpolant (xp, fp) at a single
// position x, with the same edge-clamping policy as [Linear].
func At(x float64, xp, fp []float64) (float64, error) {
	if err := validateGrid(xp, fp); err != nil {
		return 0, err
	}
	return at(x, xp, fp), nil
}

func validateGrid(xp, fp []float64) error {
	if len(xp) == 0 {
		return ErrEmptyGrid
	}
	if len(xp) != len(fp) {
		return ErrLengthMismatch
	}
	for i := 1; i < len(xp); i++ {
		if !(xp[i] > xp[i-1]) {
			return fmt.Errorf("interp: xp must be strictly increasing at index %d", i)
		}
	}
	return nil
}

func at(q float64, xp, fp []float64) float64 {
	if q <= xp[0] {
		return fp[0]
	}
	if q >= xp[len(xp)-1] {
		return fp[len(fp)-1]
	}
	j := sort.SearchFloat64s(xp, q)
	x0, x1 := xp[j-1], xp[j]
	t := (q - x0) / (x1 - x0)
	return fp[j-1] + t*(fp[j]-fp[j-1])
}

package kit

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/ndim"
)

// RemoveNaNs1D removes correlated rows containing NaN from a list of equally
// sized 1-D arrays: every index that is NaN in any input is dropped from all
// inputs. The returned arrays preserve the input order and keep index
// correspondence among the surviving rows.
func RemoveNaNs1D(arrs [][]float64) [][]float64 {
	keep := make([]bool, len(arrs[0]))
	for i := range keep {
		keep[i] = true
	}
	for _, arr := range arrs {
		for i, v := range arr {
			if math.IsNaN(v) {
				keep[i] = false
			}
		}
	}

	count := 0
	for _, k := range keep {
		if k {
			count++
		}
	}

	out := make([][]float64, len(arrs))
	for j, arr := range arrs {
		kept := make([]float64, 0, count)
		for i, v := range arr {
			if keep[i] {
				kept = append(kept, v)
			}
		}
		out[j] = kept
	}
	return out
}

// ShareNaNs synchronizes NaN positions across a list of equally shaped
// arrays: if any input is NaN at a position, every returned array is NaN
// there. Non-NaN positions are unchanged and the inputs are not mutated.
//
// The contamination mask is built by elementwise multiplication of a zero
// array with every input and then added into each copy. NaN propagation
// through the arithmetic, not a mask predicate, is the contract: the mask
// stays zero wherever every input is finite, so addition leaves those
// positions bit-identical.
func ShareNaNs(arrs []*ndim.Array) []*ndim.Array {
	nans := ndim.New(arrs[0].Shape()...)
	for _, arr := range arrs {
		vecmath.MulBlockInPlace(nans.Data(), arr.Data())
	}

	out := make([]*ndim.Array, len(arrs))
	for i, arr := range arrs {
		c := arr.Clone()
		vecmath.AddBlockInPlace(c.Data(), nans.Data())
		out[i] = c
	}
	return out
}

package kit

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-spectra/ndim"
)

// Tolerances for the even-spacing precondition, matching the usual
// absolute/relative closeness defaults.
const (
	spacingAbsTol = 1e-8
	spacingRelTol = 1e-5
)

// FFT computes the discrete Fourier transform of yi along axis and returns
// the conjugate coordinate axis together with the transform. If xi is in the
// time domain the returned axis is in the frequency domain, and so on.
//
// xi must be exactly 1-D or a [DimensionalityError] is returned, and its
// samples must be uniformly spaced within tolerance or [ErrUnevenSpacing] is
// returned. Both outputs are reordered so that the zero-frequency component
// sits in the center of the axis.
func FFT(xi *ndim.Array, yi *ndim.Array, axis int) ([]float64, *ndim.Complex, error) {
	if xi.NDim() != 1 {
		return nil, nil, &DimensionalityError{Expected: 1, Actual: xi.NDim()}
	}
	x := xi.Data()
	if err := checkEvenSpacing(x); err != nil {
		return nil, nil, err
	}

	size := yi.Shape()[axis]
	transform := newTransform(size)

	out := ndim.NewComplex(yi.Shape()...)
	in := make([]complex128, size)
	dst := make([]complex128, size)
	var lane []float64
	for l := 0; l < yi.LaneCount(axis); l++ {
		lane = yi.Lane(axis, l, lane)
		for i, v := range lane {
			in[i] = complex(v, 0)
		}
		if err := transform(dst, in); err != nil {
			return nil, nil, err
		}
		out.SetLane(axis, l, shiftHalf(dst))
	}

	n := len(x)
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	d := (hi - lo) / float64(n-1)
	freq := shiftHalf(fftfreq(n, d))

	return freq, out, nil
}

// checkEvenSpacing verifies that consecutive gaps all match their mean within
// tolerance.
func checkEvenSpacing(x []float64) error {
	if len(x) < 3 {
		return nil
	}
	mean := (x[len(x)-1] - x[0]) / float64(len(x)-1)
	tol := spacingAbsTol + spacingRelTol*math.Abs(mean)
	for i := 1; i < len(x); i++ {
		if math.Abs((x[i]-x[i-1])-mean) > tol {
			return ErrUnevenSpacing
		}
	}
	return nil
}

// transformFunc computes a forward DFT of src into dst.
type transformFunc func(dst, src []complex128) error

// newTransform returns an FFT plan for power-of-two sizes and a direct DFT of
// identical semantics otherwise; instrument axes are frequently not
// power-of-two sized.
func newTransform(n int) transformFunc {
	if n > 1 && n&(n-1) == 0 {
		if plan, err := algofft.NewPlan64(n); err == nil {
			return plan.Forward
		}
	}
	return func(dst, src []complex128) error {
		directDFT(dst, src)
		return nil
	}
}

func directDFT(dst, src []complex128) {
	n := len(src)
	for k := 0; k < n; k++ {
		var sum complex128
		for j, v := range src {
			ang := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += v * cmplx.Exp(complex(0, ang))
		}
		dst[k] = sum
	}
}

// fftfreq returns the DFT sample frequencies for n samples spaced d apart:
// [0, 1, ..., (n-1)/2, -(n/2), ..., -1] / (n*d).
func fftfreq(n int, d float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (float64(n) * d)
	half := (n - 1) / 2
	for i := 0; i <= half && i < n; i++ {
		out[i] = float64(i) * scale
	}
	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * scale
	}
	return out
}

// shiftHalf rotates a slice so the zero-frequency element is centered
// (fft-shift convention). A new slice is returned.
func shiftHalf[T any](in []T) []T {
	n := len(in)
	out := make([]T, n)
	if n == 0 {
		return out
	}
	shift := n / 2
	for i := range out {
		out[i] = in[(i-shift+n)%n]
	}
	return out
}

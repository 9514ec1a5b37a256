package spectrum

import (
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectra/ndim"
)

// planes is pooled scratch memory holding the real and imaginary planes of a
// bin slice back to back, so the block operations can work on contiguous
// float64 data.
type planes struct {
	data []float64
}

var planesPool = sync.Pool{
	New: func() any { return &planes{} },
}

// unpack splits in into its real and imaginary planes inside pooled storage.
// The caller must release the returned planes when done with the views.
func unpack(in []complex128) (re, im []float64, p *planes) {
	p = planesPool.Get().(*planes)
	n := len(in)
	if cap(p.data) < 2*n {
		p.data = make([]float64, 2*n)
	}
	re, im = p.data[:n], p.data[n:2*n]
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, p
}

func (p *planes) release() {
	planesPool.Put(p)
}

// Magnitude returns |X[k]| for each complex bin.
//
// Magnitudes are computed through SIMD block operations; scratch buffers are
// pooled internally, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	magnitudeInto(out, in)
	return out
}

// Power returns |X[k]|^2 for each complex bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	powerInto(out, in)
	return out
}

// Phase returns arg(X[k]) for each complex bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// MagnitudePlane returns the elementwise magnitude of a whole transform
// array, preserving its shape.
func MagnitudePlane(in *ndim.Complex) *ndim.Array {
	out := ndim.New(in.Shape()...)
	if in.Len() > 0 {
		magnitudeInto(out.Data(), in.Data())
	}
	return out
}

// PowerPlane returns the elementwise squared magnitude of a whole transform
// array, preserving its shape.
func PowerPlane(in *ndim.Complex) *ndim.Array {
	out := ndim.New(in.Shape()...)
	if in.Len() > 0 {
		powerInto(out.Data(), in.Data())
	}
	return out
}

func magnitudeInto(dst []float64, in []complex128) {
	re, im, p := unpack(in)
	vecmath.Magnitude(dst, re, im)
	p.release()
}

func powerInto(dst []float64, in []complex128) {
	re, im, p := unpack(in)
	vecmath.Power(dst, re, im)
	p.release()
}

package ndim

import (
	"fmt"
	"iter"
)

// Array is a dense row-major N-dimensional float64 array.
//
// The backing slice is exposed through [Array.Data]; mutations through the
// slice and through [Array.Set] are equivalent.
type Array struct {
	shape   []int
	strides []int
	data    []float64
}

// New returns a zero-filled array with the given shape.
func New(shape ...int) *Array {
	s := cloneShape(shape)
	return &Array{
		shape:   s,
		strides: computeStrides(s),
		data:    make([]float64, sizeOf(s)),
	}
}

// FromSlice wraps data as an array with the given shape.
// The slice is used directly, not copied. It panics if the slice length does
// not match the shape's element count.
func FromSlice(data []float64, shape ...int) *Array {
	s := cloneShape(shape)
	if len(data) != sizeOf(s) {
		panic(fmt.Sprintf("ndim: slice length %d does not match shape %v", len(data), s))
	}
	return &Array{shape: s, strides: computeStrides(s), data: data}
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int { return cloneShape(a.shape) }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Len returns the total element count.
func (a *Array) Len() int { return len(a.data) }

// Data returns the flat row-major backing slice.
func (a *Array) Data() []float64 { return a.data }

// At returns the element at the given index tuple.
func (a *Array) At(idx ...int) float64 {
	return a.data[offsetOf(a.strides, idx)]
}

// Set stores v at the given index tuple.
func (a *Array) Set(v float64, idx ...int) {
	a.data[offsetOf(a.strides, idx)] = v
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	out := New(a.shape...)
	copy(out.data, a.data)
	return out
}

// Fill sets every element to v.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// IndexOf converts a flat row-major offset into an index tuple.
func (a *Array) IndexOf(offset int) []int {
	return unravel(a.strides, offset)
}

// Indices yields every index tuple in row-major order.
// The yielded slice is reused between iterations; callers that retain it must
// copy it first.
func (a *Array) Indices() iter.Seq[[]int] {
	return indexSeq(a.shape, len(a.data))
}

// LaneCount returns the number of 1-D lanes along axis.
func (a *Array) LaneCount(axis int) int {
	if a.shape[axis] == 0 {
		return 0
	}
	return len(a.data) / a.shape[axis]
}

// Lane gathers lane number lane along axis into dst and returns it.
// dst is grown as needed; passing nil allocates a fresh slice.
func (a *Array) Lane(axis, lane int, dst []float64) []float64 {
	size, inner := laneParts(a.shape, axis)
	if cap(dst) < size {
		dst = make([]float64, size)
	}
	dst = dst[:size]
	base := laneBase(lane, size, inner)
	for j := 0; j < size; j++ {
		dst[j] = a.data[base+j*inner]
	}
	return dst
}

// SetLane scatters src into lane number lane along axis.
func (a *Array) SetLane(axis, lane int, src []float64) {
	size, inner := laneParts(a.shape, axis)
	base := laneBase(lane, size, inner)
	for j := 0; j < size; j++ {
		a.data[base+j*inner] = src[j]
	}
}

func cloneShape(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)
	return out
}

func sizeOf(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// computeStrides returns row-major strides: the last axis is contiguous.
func computeStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}
	return strides
}

func offsetOf(strides, idx []int) int {
	if len(idx) != len(strides) {
		panic(fmt.Sprintf("ndim: got %d indices for %d-dimensional array", len(idx), len(strides)))
	}
	off := 0
	for i, x := range idx {
		off += x * strides[i]
	}
	return off
}

func unravel(strides []int, offset int) []int {
	idx := make([]int, len(strides))
	for i, s := range strides {
		idx[i] = offset / s
		offset %= s
	}
	return idx
}

func indexSeq(shape []int, total int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if total == 0 {
			return
		}
		idx := make([]int, len(shape))
		for {
			if !yield(idx) {
				return
			}
			i := len(shape) - 1
			for ; i >= 0; i-- {
				idx[i]++
				if idx[i] < shape[i] {
					break
				}
				idx[i] = 0
			}
			if i < 0 {
				return
			}
		}
	}
}

// laneParts splits a shape around axis into the lane size and the inner
// (faster-varying) stride product.
func laneParts(shape []int, axis int) (size, inner int) {
	size = shape[axis]
	inner = 1
	for i := axis + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return size, inner
}

// laneBase returns the flat offset of the first element of a lane.
// Lanes are numbered so that lane = outerIndex*inner + innerIndex.
func laneBase(lane, size, inner int) int {
	oi := lane / inner
	ii := lane % inner
	return oi*size*inner + ii
}

package ndim

import "fmt"

// Complex is a dense row-major N-dimensional complex128 array.
// It mirrors [Array] and exists for transform outputs.
type Complex struct {
	shape   []int
	strides []int
	data    []complex128
}

// NewComplex returns a zero-filled complex array with the given shape.
func NewComplex(shape ...int) *Complex {
	s := cloneShape(shape)
	return &Complex{
		shape:   s,
		strides: computeStrides(s),
		data:    make([]complex128, sizeOf(s)),
	}
}

// ComplexFromSlice wraps data as a complex array with the given shape.
// The slice is used directly, not copied.
func ComplexFromSlice(data []complex128, shape ...int) *Complex {
	s := cloneShape(shape)
	if len(data) != sizeOf(s) {
		panic(fmt.Sprintf("ndim: slice length %d does not match shape %v", len(data), s))
	}
	return &Complex{shape: s, strides: computeStrides(s), data: data}
}

// Shape returns a copy of the array's shape.
func (c *Complex) Shape() []int { return cloneShape(c.shape) }

// NDim returns the number of dimensions.
func (c *Complex) NDim() int { return len(c.shape) }

// Len returns the total element count.
func (c *Complex) Len() int { return len(c.data) }

// Data returns the flat row-major backing slice.
func (c *Complex) Data() []complex128 { return c.data }

// At returns the element at the given index tuple.
func (c *Complex) At(idx ...int) complex128 {
	return c.data[offsetOf(c.strides, idx)]
}

// Set stores v at the given index tuple.
func (c *Complex) Set(v complex128, idx ...int) {
	c.data[offsetOf(c.strides, idx)] = v
}

// Clone returns a deep copy of the array.
func (c *Complex) Clone() *Complex {
	out := NewComplex(c.shape...)
	copy(out.data, c.data)
	return out
}

// LaneCount returns the number of 1-D lanes along axis.
func (c *Complex) LaneCount(axis int) int {
	if c.shape[axis] == 0 {
		return 0
	}
	return len(c.data) / c.shape[axis]
}

// Lane gathers lane number lane along axis into dst and returns it.
func (c *Complex) Lane(axis, lane int, dst []complex128) []complex128 {
	size, inner := laneParts(c.shape, axis)
	if cap(dst) < size {
		dst = make([]complex128, size)
	}
	dst = dst[:size]
	base := laneBase(lane, size, inner)
	for j := 0; j < size; j++ {
		dst[j] = c.data[base+j*inner]
	}
	return dst
}

// SetLane scatters src into lane number lane along axis.
func (c *Complex) SetLane(axis, lane int, src []complex128) {
	size, inner := laneParts(c.shape, axis)
	base := laneBase(lane, size, inner)
	for j := 0; j < size; j++ {
		c.data[base+j*inner] = src[j]
	}
}

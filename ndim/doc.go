// Package ndim provides dense row-major N-dimensional arrays.
//
// The package intentionally stays small: it exists to give the kit routines a
// shape-aware view over flat float64 and complex128 slices, including lane
// gather/scatter along an arbitrary axis. It is not a linear-algebra library.
package ndim

package kit

import "github.com/cwbudde/algo-spectra/ndim"

// JointShape returns the smallest shape that bounds every input array:
// the per-dimension maximum extent. All inputs are assumed to share the same
// number of dimensions. An empty input list yields an empty shape.
func JointShape(arrs []*ndim.Array) []int {
	if len(arrs) == 0 {
		return []int{}
	}
	shape := arrs[0].Shape()
	for _, a := range arrs[1:] {
		for i, s := range a.Shape() {
			if s > shape[i] {
				shape[i] = s
			}
		}
	}
	return shape
}

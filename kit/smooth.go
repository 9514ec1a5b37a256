package kit

// DefaultSmoothWidth is the half-window applied by callers that do not pick
// their own.
const DefaultSmoothWidth = 10

// Smooth1D smooths arr in place by a cascading running average and returns
// the same slice. Each interior element is replaced by the mean of the window
// [i-halfwidth, i+halfwidth), reading values already updated earlier in the
// same pass. The first and last halfwidth elements are left untouched.
//
// The caller grants exclusive mutable access to arr for the duration of the
// call; use [Smoothed1D] for non-mutating semantics. A halfwidth that leaves
// no interior range (including halfwidth <= 0) returns arr unchanged.
func Smooth1D(arr []float64, halfwidth int) []float64 {
	if halfwidth <= 0 {
		return arr
	}
	for i := halfwidth; i < len(arr)-halfwidth; i++ {
		sum := 0.0
		for j := i - halfwidth; j < i+halfwidth; j++ {
			sum += arr[j]
		}
		arr[i] = sum / float64(2*halfwidth)
	}
	return arr
}

// Smoothed1D is the copying variant of [Smooth1D]; arr is not mutated.
func Smoothed1D(arr []float64, halfwidth int) []float64 {
	out := make([]float64, len(arr))
	copy(out, arr)
	return Smooth1D(out, halfwidth)
}

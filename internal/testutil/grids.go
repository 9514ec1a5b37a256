package testutil

import "math"

// UniformGrid returns n coordinates starting at x0 with the given step.
func UniformGrid(x0, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x0 + float64(i)*step
	}
	return out
}

// Sine returns a sinusoid completing the given number of full cycles over n
// samples.
func Sine(cycles float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * cycles * float64(i) / float64(n))
	}
	return out
}

// Scaled returns a copy of xs with every element multiplied by k.
func Scaled(xs []float64, k float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = k * x
	}
	return out
}

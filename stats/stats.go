// Package stats computes descriptive statistics for measurement channels.
//
// Spectroscopy channels routinely carry NaN markers for masked or failed
// samples, so every moment here is computed over the finite samples only and
// the NaN count is reported alongside.
package stats

import "math"

// Stats holds channel statistics. Positions refer to indices in the original
// slice, including any skipped NaN samples.
type Stats struct {
	Count    int // finite samples
	NaNs     int
	Mean     float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
	Range    float64
	RMS      float64
	Energy   float64 // sum of squares
	Variance float64
	Skewness float64
	Kurtosis float64
}

// emptyStats is returned for inputs with no finite samples: moments are NaN
// and positions are -1.
func emptyStats(nans int) Stats {
	n := math.NaN()
	return Stats{
		NaNs:     nans,
		Mean:     n,
		Min:      n,
		MinPos:   -1,
		Max:      n,
		MaxPos:   -1,
		Range:    n,
		RMS:      n,
		Variance: n,
		Skewness: n,
		Kurtosis: n,
	}
}

// Describe computes all statistics in a single pass using Welford's online
// algorithm for numerical stability on the higher-order moments. NaN samples
// are skipped and counted; an input with no finite samples yields NaN
// moments.
func Describe(values []float64) Stats {
	// Welford accumulators over finite samples.
	var (
		mean float64
		m2   float64
		m3   float64
		m4   float64
	)

	var (
		count  int
		nans   int
		sumSq  float64
		minVal float64
		minPos = -1
		maxVal float64
		maxPos = -1
	)

	for i, x := range values {
		if math.IsNaN(x) {
			nans++
			continue
		}

		count++
		ni := float64(count)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * (ni - 1)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(ni-2) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x

		if minPos < 0 || x < minVal {
			minVal = x
			minPos = i
		}
		if maxPos < 0 || x > maxVal {
			maxVal = x
			maxPos = i
		}
	}

	if count == 0 {
		return emptyStats(nans)
	}

	nf := float64(count)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Count:    count,
		NaNs:     nans,
		Mean:     mean,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Range:    maxVal - minVal,
		RMS:      math.Sqrt(sumSq / nf),
		Energy:   sumSq,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// Mean returns the NaN-skipping mean of values.
// Kahan summation keeps long channels stable.
func Mean(values []float64) float64 {
	var sum, c float64
	count := 0
	for _, x := range values {
		if math.IsNaN(x) {
			continue
		}
		count++
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

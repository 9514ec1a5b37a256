package kit

import (
	"math"
	"slices"
	"sort"
)

// DefaultTolerance is the uniqueness tolerance applied by callers that do
// not pick their own.
const DefaultTolerance = 1e-6

// Unique returns the unique values of arr within an absolute tolerance, as a
// sorted slice of cluster means. N-D callers pass the flat backing slice;
// element order is irrelevant since the pool is sorted internally.
//
// Clusters are gathered around the smallest remaining value; the removal
// step is keyed on the cluster's first element, not the cluster mean. The
// pool is sorted, so the two coincide. Keep it that way: rekeying the filter
// on the mean gives a subtly different clustering.
func Unique(arr []float64, tolerance float64) []float64 {
	pool := slices.Clone(arr)
	sort.Float64s(pool)

	var out []float64
	for len(pool) > 0 {
		current := pool[0]

		var cluster []float64
		for _, v := range pool {
			if math.Abs(current-v) < tolerance {
				cluster = append(cluster, v)
			}
		}
		if len(cluster) == 0 {
			// A non-positive tolerance matches nothing, not even the minimum
			// itself; consume the head so the loop terminates.
			out = append(out, current)
			pool = pool[1:]
			continue
		}

		head := cluster[0]
		n := 0
		for _, v := range pool {
			if !(math.Abs(head-v) < tolerance) {
				pool[n] = v
				n++
			}
		}
		pool = pool[:n]

		sum := 0.0
		for _, v := range cluster {
			sum += v
		}
		out = append(out, sum/float64(len(cluster)))
	}
	return out
}

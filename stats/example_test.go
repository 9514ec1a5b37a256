package stats_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/stats"
)

func ExampleDescribe() {
	s := stats.Describe([]float64{1, 2, math.NaN(), 3, 4})
	fmt.Printf("count=%d nans=%d mean=%.2f range=%.2f\n", s.Count, s.NaNs, s.Mean, s.Range)
	// Output:
	// count=4 nans=1 mean=2.50 range=3.00
}

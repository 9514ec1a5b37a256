package kit

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPairMode = errors.New("kit: unknown closest-pair mode")
	ErrUnevenSpacing   = errors.New("kit: fft coordinate spacing must be even")
)

// DimensionalityError reports an array with the wrong number of dimensions.
type DimensionalityError struct {
	Expected int
	Actual   int
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("kit: expected %d-dimensional array, got %d dimensions", e.Expected, e.Actual)
}

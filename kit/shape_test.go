package kit

import (
	"slices"
	"testing"

	"github.com/cwbudde/algo-spectra/ndim"
)

func TestJointShape(t *testing.T) {
	a := ndim.New(3, 4)
	b := ndim.New(5, 2)

	got := JointShape([]*ndim.Array{a, b})
	if !slices.Equal(got, []int{5, 4}) {
		t.Fatalf("got %v, want [5 4]", got)
	}
}

func TestJointShapeSingle(t *testing.T) {
	a := ndim.New(2, 7, 1)
	got := JointShape([]*ndim.Array{a})
	if !slices.Equal(got, []int{2, 7, 1}) {
		t.Fatalf("got %v, want [2 7 1]", got)
	}
}

func TestJointShapeEmpty(t *testing.T) {
	got := JointShape(nil)
	if len(got) != 0 {
		t.Fatalf("got %v, want empty shape", got)
	}
}

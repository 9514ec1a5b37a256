// Package interp provides interpolation over sample grids.
//
// [Linear] evaluates a piecewise-linear interpolant defined by coordinate
// points xp and values fp at arbitrary query positions, clamping to the edge
// values outside the domain. This is the resampling primitive used by the kit
// derivative routine when mapping midpoint derivatives back onto the original
// coordinate grid.
package interp

// Package kit provides numeric array utilities for spectroscopy datasets.
//
// Each routine is an independent transform: arrays in, arrays out. There is
// no shared state between calls. Coordinate arrays hold sample positions
// along one dataset axis; value arrays hold the measured values associated
// with them. [Smooth1D] is the only routine that mutates its argument; every
// other routine treats inputs as read-only and copies before reordering.
package kit

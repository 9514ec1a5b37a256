// Package spectrum extracts real-valued planes from complex transform
// output.
//
// The package does not implement the transform itself; it operates on the
// complex bins produced by kit.FFT (or any other DFT backend) and provides
// magnitude, power, and phase extraction for single lanes and for whole
// N-dimensional transform arrays.
package spectrum

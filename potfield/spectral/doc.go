// Package spectral provides the wavenumber-domain machinery shared by all
// potential-field transforms: 2D Fourier transforms, angular wavenumber
// grids, directional (theta) factors for magnetic directions, and radially
// averaged power spectra with the classic depth estimate.
//
// # FFT backends
//
// FFT2 decomposes the 2D transform into 1D passes along rows and columns.
// Power-of-two axis lengths run on algo-fft plans; every other length runs
// on gonum's arbitrary-size complex FFT. Forward and inverse are normalized
// consistently, so Inverse(Forward(x)) reproduces x regardless of backend.
//
// # Layout
//
// All slices use the grid package's row-major layout. The zero-wavenumber
// (DC) term of a transformed grid sits at flat index 0, matching the
// ordering of the wavenumber grids built by Wavenumber.
package spectral

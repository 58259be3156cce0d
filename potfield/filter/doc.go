// Package filter implements the Fourier-domain potential-field transforms:
// vertical continuation, reduction between magnetization directions, and the
// pseudogravity transform.
//
// Every operator follows the same scheme: validate scalar and shape
// preconditions, build a frequency-domain operator from the wavenumber
// grids, multiply it onto the 2D transform of the data, and invert. Results
// are complex grids; Real() extracts the usable part.
//
// Division by zero at singular wavenumbers (typically the DC term, or whole
// lines for near-equatorial directions in Reduction) produces inf/NaN
// samples that propagate silently into the output. WithStrict upgrades such
// outputs to grid.ErrNonFinite instead.
package filter

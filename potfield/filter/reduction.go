package filter

import (
	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
)

// Reduction converts a magnetic anomaly observed under one field/source
// direction pair into the equivalent anomaly under another pair, after
// Blakely (1996). The operator is (f1*m1)/(f0*m0) over the four directional
// factors, with the DC term forced to zero since its true ratio is 0/0.
//
// For inclinations near zero the old-direction factors vanish along a line
// in the wavenumber plane and the division produces non-finite samples
// there; these propagate into the result unless strict mode is on. The
// filter is well behaved for inclinations beyond roughly +/-15 degrees.
func Reduction(x, y, data *grid.Grid, oldField, oldSource, newField, newSource spectral.Direction, opts ...Option) (*grid.Complex, error) {
	cfg := ApplyOptions(opts...)
	if err := grid.CheckSameShape(x, y, data); err != nil {
		return nil, err
	}

	kx, ky, err := spectral.Wavenumber(x, y)
	if err != nil {
		return nil, err
	}

	f0, err := spectral.Theta(oldField, kx, ky)
	if err != nil {
		return nil, err
	}
	m0, err := spectral.Theta(oldSource, kx, ky)
	if err != nil {
		return nil, err
	}
	f1, err := spectral.Theta(newField, kx, ky)
	if err != nil {
		return nil, err
	}
	m1, err := spectral.Theta(newSource, kx, ky)
	if err != nil {
		return nil, err
	}

	f0d, m0d := f0.Data(), m0.Data()
	f1d, m1d := f1.Data(), m1.Data()
	op := make([]complex128, data.Len())
	// Complex division never traps; singular bins land as inf/NaN in place.
	for i := range op {
		op[i] = (f1d[i] * m1d[i]) / (f0d[i] * m0d[i])
	}
	op[0] = 0
	return transform(data, op, cfg)
}

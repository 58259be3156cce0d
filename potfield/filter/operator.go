package filter

import (
	"fmt"

	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
)

// transform carries data to the wavenumber domain, multiplies it elementwise
// by op and inverts. The operator slice is consumed, never retained. In
// strict mode a result with non-finite samples fails instead of being
// returned.
func transform(data *grid.Grid, op []complex128, cfg Config) (*grid.Complex, error) {
	f, err := spectral.NewFFT2(data.Nx(), data.Ny())
	if err != nil {
		return nil, err
	}

	buf := make([]complex128, data.Len())
	if err := f.ForwardReal(buf, data.Data()); err != nil {
		return nil, err
	}
	for i := range buf {
		buf[i] *= op[i]
	}
	if err := f.Inverse(buf, buf); err != nil {
		return nil, err
	}

	if cfg.Strict {
		if n := grid.CountNonFiniteComplex(buf); n > 0 {
			return nil, fmt.Errorf("%d of %d samples: %w", n, len(buf), grid.ErrNonFinite)
		}
	}
	return grid.ComplexFromSlice(data.Nx(), data.Ny(), buf)
}

package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
)

// Continuation shifts the observation level of gridded potential-field data,
// multiplying the spectrum by exp(-height*|k|). A positive height continues
// the field upward, attenuating short wavelengths; a negative height
// continues downward, amplifying them and growing unstable at large |height|
// or fine grids. No stabilization is applied; the exponential is the same
// for both signs.
func Continuation(x, y, data *grid.Grid, height float64, opts ...Option) (*grid.Complex, error) {
	cfg := ApplyOptions(opts...)
	if height == 0 {
		return nil, fmt.Errorf("height must differ from zero: %w", grid.ErrInvalidParameter)
	}
	if err := grid.CheckSameShape(x, y, data); err != nil {
		return nil, err
	}

	kx, ky, err := spectral.Wavenumber(x, y)
	if err != nil {
		return nil, err
	}

	kxd, kyd := kx.Data(), ky.Data()
	op := make([]complex128, data.Len())
	for i := range op {
		op[i] = complex(math.Exp(-height*math.Hypot(kxd[i], kyd[i])), 0)
	}
	return transform(data, op, cfg)
}

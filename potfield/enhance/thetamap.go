package enhance

import (
	"github.com/cwbudde/algo-potfield/potfield/gradient"
	"github.com/cwbudde/algo-potfield/potfield/grid"
)

// ThetaMap returns the ratio of horizontal to total gradient magnitude,
// a unitless edge detector in [0, 1] wherever the total gradient is
// nonzero. There is no zero guard: samples with zero total gradient come
// out non-finite and propagate, unless strict mode upgrades them to an
// error.
func ThetaMap(x, y, data *grid.Grid, opts ...Option) (*grid.Grid, error) {
	cfg := ApplyOptions(opts...)
	if err := grid.CheckSameShape(x, y, data); err != nil {
		return nil, err
	}

	hgrad, err := gradient.HorizontalGradient(x, y, data)
	if err != nil {
		return nil, err
	}
	tgrad, err := gradient.TotalGradient(x, y, data)
	if err != nil {
		return nil, err
	}

	hgd, tgd := hgrad.Data(), tgrad.Data()
	out := make([]float64, data.Len())
	for i := range out {
		out[i] = hgd[i] / tgd[i]
	}

	if err := checkFinite(out, cfg); err != nil {
		return nil, err
	}
	return grid.FromSlice(data.Nx(), data.Ny(), out)
}

package enhance

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-potfield/potfield/gradient"
	"github.com/cwbudde/algo-potfield/potfield/grid"
)

// tiltAngle is the shared core of Tilt and HyperbolicTilt:
// atan2(vertical derivative, horizontal gradient magnitude), elementwise.
func tiltAngle(x, y, data *grid.Grid, cfg Config) (*grid.Grid, error) {
	if err := grid.CheckSameShape(x, y, data); err != nil {
		return nil, err
	}

	hgrad, err := gradient.HorizontalGradient(x, y, data)
	if err != nil {
		return nil, err
	}
	dz, err := gradient.ZDeriv(x, y, data, 1)
	if err != nil {
		return nil, err
	}

	hgd, dzd := hgrad.Data(), dz.Data()
	out := make([]float64, data.Len())
	for i := range out {
		out[i] = math.Atan2(dzd[i], hgd[i])
	}

	if err := checkFinite(out, cfg); err != nil {
		return nil, err
	}
	return grid.FromSlice(data.Nx(), data.Ny(), out)
}

func checkFinite(out []float64, cfg Config) error {
	if !cfg.Strict {
		return nil
	}
	if n := grid.CountNonFinite(out); n > 0 {
		return fmt.Errorf("%d of %d samples: %w", n, len(out), grid.ErrNonFinite)
	}
	return nil
}

// Tilt returns the tilt angle of gridded potential-field data: the angle in
// radians between the vertical derivative and the horizontal gradient
// magnitude. Because the magnitude is never negative, values lie in
// [-pi/2, pi/2], with the zero crossing tracking source edges.
func Tilt(x, y, data *grid.Grid, opts ...Option) (*grid.Grid, error) {
	return tiltAngle(x, y, data, ApplyOptions(opts...))
}

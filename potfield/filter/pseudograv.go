package filter

import (
	"fmt"

	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
)

// Pseudogravity converts a total-field magnetic anomaly into the equivalent
// gravity anomaly of the same source under Poisson's relation, assuming a
// density contrast rho (kg/m^3 scale factor) and magnetization intensity mag
// (A/m). The operator is C/(thetaField*thetaSource*|k|) with
// C = G*rho*si2mGal/(cm*mag*t2nT) taken from the injected constant table,
// and the result is in mGal for nT input.
//
// The DC term divides by zero and is forced to zero, so any constant offset
// of the input does not survive the transform.
func Pseudogravity(x, y, data *grid.Grid, field, source spectral.Direction, rho, mag float64, opts ...Option) (*grid.Complex, error) {
	cfg := ApplyOptions(opts...)
	if rho == 0 {
		return nil, fmt.Errorf("density must not be zero: %w", grid.ErrInvalidParameter)
	}
	if mag == 0 {
		return nil, fmt.Errorf("magnetization must not be zero: %w", grid.ErrInvalidParameter)
	}
	if err := grid.CheckSameShape(x, y, data); err != nil {
		return nil, err
	}

	kx, ky, err := spectral.Wavenumber(x, y)
	if err != nil {
		return nil, err
	}
	k, err := spectral.RadialWavenumber(kx, ky)
	if err != nil {
		return nil, err
	}

	thetaF, err := spectral.Theta(field, kx, ky)
	if err != nil {
		return nil, err
	}
	thetaS, err := spectral.Theta(source, kx, ky)
	if err != nil {
		return nil, err
	}

	c := cfg.Constants
	scale := complex(c.G*rho*c.SI2MGal/(c.CM*mag*c.T2NT), 0)

	fd, sd, kd := thetaF.Data(), thetaS.Data(), k.Data()
	op := make([]complex128, data.Len())
	// Singular bins away from DC propagate as inf/NaN, as in Reduction.
	for i := range op {
		op[i] = scale / (fd[i] * sd[i] * complex(kd[i], 0))
	}
	op[0] = 0
	return transform(data, op, cfg)
}

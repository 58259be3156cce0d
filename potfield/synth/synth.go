// Package synth builds deterministic synthetic grids: coordinate planes,
// constant and gaussian fields, seeded noise, and the closed-form
// total-field anomaly of a buried dipole. They are the canonical inputs for
// exercising the transform packages without real survey data.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/physics"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
)

// Generator creates grids over a shared geometry: nx-by-ny samples with
// spacings dx and dy. The grid frame is x north (columns), y east (rows),
// z down.
type Generator struct {
	nx, ny int
	dx, dy float64
	seed   int64
	consts physics.Constants
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithConstants injects the physical-constant table used by DipoleAnomaly.
func WithConstants(c physics.Constants) Option {
	return func(g *Generator) {
		g.consts = c
	}
}

// NewGenerator creates a generator for nx-by-ny grids with the given sample
// spacings. At least two samples per axis are required so the grids carry a
// usable spacing.
func NewGenerator(nx, ny int, dx, dy float64, opts ...Option) (*Generator, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("generator needs at least 2 samples per axis: %dx%d", nx, ny)
	}
	if dx <= 0 || dy <= 0 {
		return nil, fmt.Errorf("generator spacings must be > 0: dx=%g dy=%g", dx, dy)
	}
	g := &Generator{
		nx:     nx,
		ny:     ny,
		dx:     dx,
		dy:     dy,
		seed:   1,
		consts: physics.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// PlaneGrid returns the coordinate grids of the geometry: x varying along
// columns, y along rows, both starting at zero.
func (g *Generator) PlaneGrid() (x, y *grid.Grid) {
	x, _ = grid.New(g.nx, g.ny)
	y, _ = grid.New(g.nx, g.ny)
	for iy := 0; iy < g.ny; iy++ {
		for ix := 0; ix < g.nx; ix++ {
			x.Set(ix, iy, float64(ix)*g.dx)
			y.Set(ix, iy, float64(iy)*g.dy)
		}
	}
	return x, y
}

// Constant returns a grid filled with v.
func (g *Generator) Constant(v float64) *grid.Grid {
	out, _ := grid.New(g.nx, g.ny)
	return out.Fill(v)
}

// GaussianSource returns a radially symmetric gaussian anomaly of the given
// amplitude centered at (x0, y0) with standard deviation sigma, in the
// coordinate units of the geometry.
func (g *Generator) GaussianSource(amplitude, x0, y0, sigma float64) (*grid.Grid, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("gaussian sigma must be > 0: %g", sigma)
	}
	out, _ := grid.New(g.nx, g.ny)
	inv := 1 / (2 * sigma * sigma)
	for iy := 0; iy < g.ny; iy++ {
		dy := float64(iy)*g.dy - y0
		for ix := 0; ix < g.nx; ix++ {
			dx := float64(ix)*g.dx - x0
			out.Set(ix, iy, amplitude*math.Exp(-(dx*dx+dy*dy)*inv))
		}
	}
	return out, nil
}

// WhiteNoise returns deterministic uniform noise in [-amplitude, amplitude].
// The same seed always produces the same grid.
func (g *Generator) WhiteNoise(amplitude float64) (*grid.Grid, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %g", amplitude)
	}
	out, _ := grid.New(g.nx, g.ny)
	rng := rand.New(rand.NewSource(g.seed))
	data := out.Data()
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// DipoleAnomaly returns the total-field anomaly, in nT, of a point dipole
// buried at depth below (x0, y0) with the given moment (A m^2) magnetized
// along source, observed on the grid plane in an ambient field along field:
//
//	dT = cm * t2nT * moment * (3*(m.r)(f.r) - m.f) / r^3
//
// with m, f unit direction cosines and r the dipole-to-observation vector.
func (g *Generator) DipoleAnomaly(field, source spectral.Direction, x0, y0, depth, moment float64) (*grid.Grid, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("dipole depth must be > 0: %g", depth)
	}
	if moment == 0 {
		return nil, fmt.Errorf("dipole moment must not be zero")
	}

	fx, fy, fz := field.Cosines()
	mx, my, mz := source.Cosines()
	scale := g.consts.CM * g.consts.T2NT * moment
	mdotf := mx*fx + my*fy + mz*fz

	out, _ := grid.New(g.nx, g.ny)
	for iy := 0; iy < g.ny; iy++ {
		ry := float64(iy)*g.dy - y0
		for ix := 0; ix < g.nx; ix++ {
			rx := float64(ix)*g.dx - x0
			rz := -depth // z is positive down; the grid sits above the dipole
			r := math.Sqrt(rx*rx + ry*ry + rz*rz)
			ux, uy, uz := rx/r, ry/r, rz/r
			mdotr := mx*ux + my*uy + mz*uz
			fdotr := fx*ux + fy*uy + fz*uz
			out.Set(ix, iy, scale*(3*mdotr*fdotr-mdotf)/(r*r*r))
		}
	}
	return out, nil
}

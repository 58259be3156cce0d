package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-potfield/potfield/grid"
)

// AngularFrequencies returns the discrete angular wavenumbers 2*pi*f of an
// n-sample axis with spacing d, in standard FFT order: DC first, positive
// frequencies ascending, then negative frequencies ascending toward zero.
func AngularFrequencies(n int, d float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("axis length must be > 0: %d: %w", n, grid.ErrInvalidParameter)
	}
	if d == 0 {
		return nil, fmt.Errorf("sample spacing must differ from zero: %w", grid.ErrInvalidParameter)
	}

	out := make([]float64, n)
	step := 2 * math.Pi / (float64(n) * d)
	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) * step
	}
	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) * step
	}
	return out, nil
}

// Wavenumber builds the 2D angular wavenumber grids conjugate to the given
// coordinate grids. Only the sample spacing implied by x and y is consumed:
// x must vary along columns and y along rows, both uniformly. The returned
// grids share the input shape, with the DC term at flat index 0.
func Wavenumber(x, y *grid.Grid) (kx, ky *grid.Grid, err error) {
	if err := grid.CheckSameShape(x, y); err != nil {
		return nil, nil, err
	}
	nx, ny := x.Nx(), x.Ny()
	if nx < 2 || ny < 2 {
		return nil, nil, fmt.Errorf("wavenumber needs at least 2 samples per axis: %dx%d: %w",
			nx, ny, grid.ErrInvalidParameter)
	}

	dx := x.At(1, 0) - x.At(0, 0)
	dy := y.At(0, 1) - y.At(0, 0)

	fx, err := AngularFrequencies(nx, dx)
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	fy, err := AngularFrequencies(ny, dy)
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}

	kxd := make([]float64, nx*ny)
	kyd := make([]float64, nx*ny)
	for iy := 0; iy < ny; iy++ {
		row := iy * nx
		for ix := 0; ix < nx; ix++ {
			kxd[row+ix] = fx[ix]
			kyd[row+ix] = fy[iy]
		}
	}

	kx, err = grid.FromSlice(nx, ny, kxd)
	if err != nil {
		return nil, nil, err
	}
	ky, err = grid.FromSlice(nx, ny, kyd)
	if err != nil {
		return nil, nil, err
	}
	return kx, ky, nil
}

// RadialWavenumber returns |k| = sqrt(kx^2 + ky^2) elementwise.
func RadialWavenumber(kx, ky *grid.Grid) (*grid.Grid, error) {
	if err := grid.CheckSameShape(kx, ky); err != nil {
		return nil, err
	}
	out := make([]float64, kx.Len())
	vecmath.Magnitude(out, kx.Data(), ky.Data())
	return grid.FromSlice(kx.Nx(), kx.Ny(), out)
}

package spectral

import (
	"math"

	"github.com/cwbudde/algo-potfield/potfield/grid"
)

// Direction is a magnetic field or source magnetization direction, given as
// inclination and declination in degrees. Inclination is positive downward,
// declination positive east of the x (north) axis.
type Direction struct {
	Inclination float64
	Declination float64
}

// Cosines returns the unit direction cosines of d in the grid frame:
// x north, y east, z down.
func (d Direction) Cosines() (mx, my, mz float64) {
	inc := d.Inclination * math.Pi / 180
	dec := d.Declination * math.Pi / 180
	cosInc := math.Cos(inc)
	return cosInc * math.Cos(dec), cosInc * math.Sin(dec), math.Sin(inc)
}

// Theta returns the Fourier-domain directional factor of dir over the given
// wavenumber grids:
//
//	theta = mz + i*(mx*kx + my*ky)/|k|
//
// with (mx, my, mz) the direction cosines of dir. The DC term divides zero
// by zero and comes out NaN; operators that consume theta factors decide how
// the DC term is treated.
func Theta(dir Direction, kx, ky *grid.Grid) (*grid.Complex, error) {
	if err := grid.CheckSameShape(kx, ky); err != nil {
		return nil, err
	}

	mx, my, mz := dir.Cosines()
	kxd, kyd := kx.Data(), ky.Data()
	out := make([]complex128, kx.Len())
	for i := range out {
		k := math.Hypot(kxd[i], kyd[i])
		out[i] = complex(mz, (mx*kxd[i]+my*kyd[i])/k)
	}
	return grid.ComplexFromSlice(kx.Nx(), kx.Ny(), out)
}

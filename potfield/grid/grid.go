package grid

import "fmt"

// Grid is a real-valued 2D rectangular array. Samples are stored row-major
// with the x axis along columns and the y axis along rows.
type Grid struct {
	nx, ny int
	data   []float64
}

// New returns a zero-filled grid with nx columns and ny rows.
func New(nx, ny int) (*Grid, error) {
	if err := validateDims(nx, ny); err != nil {
		return nil, err
	}
	return &Grid{nx: nx, ny: ny, data: make([]float64, nx*ny)}, nil
}

// FromSlice wraps data as an nx-by-ny grid without copying. The grid takes
// ownership of the slice; callers must not modify it afterwards. len(data)
// must equal nx*ny.
func FromSlice(nx, ny int, data []float64) (*Grid, error) {
	if err := validateDims(nx, ny); err != nil {
		return nil, err
	}
	if len(data) != nx*ny {
		return nil, fmt.Errorf("data length %d does not match %dx%d: %w", len(data), nx, ny, ErrInvalidShape)
	}
	return &Grid{nx: nx, ny: ny, data: data}, nil
}

// Nx returns the number of columns (samples along x).
func (g *Grid) Nx() int { return g.nx }

// Ny returns the number of rows (samples along y).
func (g *Grid) Ny() int { return g.ny }

// Len returns the total sample count nx*ny.
func (g *Grid) Len() int { return len(g.data) }

// At returns the sample at column ix, row iy.
func (g *Grid) At(ix, iy int) float64 { return g.data[iy*g.nx+ix] }

// Set stores v at column ix, row iy.
func (g *Grid) Set(ix, iy int, v float64) { g.data[iy*g.nx+ix] = v }

// Data returns the backing row-major slice. The slice aliases the grid;
// mutating it mutates the grid.
func (g *Grid) Data() []float64 { return g.data }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{nx: g.nx, ny: g.ny, data: make([]float64, len(g.data))}
	copy(out.data, g.data)
	return out
}

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.nx == o.nx && g.ny == o.ny
}

// Fill sets every sample to v and returns g for chaining.
func (g *Grid) Fill(v float64) *Grid {
	for i := range g.data {
		g.data[i] = v
	}
	return g
}

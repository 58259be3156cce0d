package grid

import "fmt"

// Complex is the complex-valued counterpart of Grid, produced by
// Fourier-domain transforms. Layout matches Grid: row-major, DC term of a
// transformed grid at flat index 0.
type Complex struct {
	nx, ny int
	data   []complex128
}

// NewComplex returns a zero-filled complex grid with nx columns and ny rows.
func NewComplex(nx, ny int) (*Complex, error) {
	if err := validateDims(nx, ny); err != nil {
		return nil, err
	}
	return &Complex{nx: nx, ny: ny, data: make([]complex128, nx*ny)}, nil
}

// ComplexFromSlice wraps data as an nx-by-ny complex grid without copying.
// The grid takes ownership of the slice. len(data) must equal nx*ny.
func ComplexFromSlice(nx, ny int, data []complex128) (*Complex, error) {
	if err := validateDims(nx, ny); err != nil {
		return nil, err
	}
	if len(data) != nx*ny {
		return nil, fmt.Errorf("data length %d does not match %dx%d: %w", len(data), nx, ny, ErrInvalidShape)
	}
	return &Complex{nx: nx, ny: ny, data: data}, nil
}

// Nx returns the number of columns (samples along x).
func (c *Complex) Nx() int { return c.nx }

// Ny returns the number of rows (samples along y).
func (c *Complex) Ny() int { return c.ny }

// Len returns the total sample count nx*ny.
func (c *Complex) Len() int { return len(c.data) }

// At returns the sample at column ix, row iy.
func (c *Complex) At(ix, iy int) complex128 { return c.data[iy*c.nx+ix] }

// Set stores v at column ix, row iy.
func (c *Complex) Set(ix, iy int, v complex128) { c.data[iy*c.nx+ix] = v }

// Data returns the backing row-major slice. The slice aliases the grid.
func (c *Complex) Data() []complex128 { return c.data }

// Clone returns a deep copy.
func (c *Complex) Clone() *Complex {
	out := &Complex{nx: c.nx, ny: c.ny, data: make([]complex128, len(c.data))}
	copy(out.data, c.data)
	return out
}

// Real returns a new grid holding the real part of every sample. For the
// space-domain output of a Fourier round-trip this is the usable result;
// the imaginary part carries only numerical round-trip noise.
func (c *Complex) Real() *Grid {
	out := make([]float64, len(c.data))
	for i, v := range c.data {
		out[i] = real(v)
	}
	return &Grid{nx: c.nx, ny: c.ny, data: out}
}

// Imag returns a new grid holding the imaginary part of every sample.
func (c *Complex) Imag() *Grid {
	out := make([]float64, len(c.data))
	for i, v := range c.data {
		out[i] = imag(v)
	}
	return &Grid{nx: c.nx, ny: c.ny, data: out}
}

package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-potfield/potfield/grid"
)

// lineFFT is a 1D transform along one grid axis. inverse is normalized:
// inverse(forward(x)) == x.
type lineFFT interface {
	forward(dst, src []complex128) error
	inverse(dst, src []complex128) error
}

// planLine runs on an algo-fft plan. Plan inverses already carry the 1/n
// factor, so no extra scaling is applied.
type planLine struct {
	plan *algofft.Plan[complex128]
}

func (p *planLine) forward(dst, src []complex128) error { return p.plan.Forward(dst, src) }
func (p *planLine) inverse(dst, src []complex128) error { return p.plan.Inverse(dst, src) }

// cmplxLine runs on gonum's arbitrary-size complex FFT, whose round trip is
// unnormalized; the inverse pass divides by n.
type cmplxLine struct {
	fft *fourier.CmplxFFT
	n   int
}

func (c *cmplxLine) forward(dst, src []complex128) error {
	c.fft.Coefficients(dst, src)
	return nil
}

func (c *cmplxLine) inverse(dst, src []complex128) error {
	c.fft.Sequence(dst, src)
	scale := complex(1/float64(c.n), 0)
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

func newLineFFT(n int) (lineFFT, error) {
	if n < 1 {
		return nil, fmt.Errorf("fft axis length must be > 0: %d: %w", n, grid.ErrInvalidShape)
	}
	if isPowerOfTwo(n) {
		if plan, err := algofft.NewPlan64(n); err == nil {
			return &planLine{plan: plan}, nil
		}
		// Plan creation is best effort; the general backend covers any size.
	}
	return &cmplxLine{fft: fourier.NewCmplxFFT(n), n: n}, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FFT2 computes forward and inverse 2D discrete Fourier transforms over
// row-major grids by row-column decomposition. An FFT2 holds per-axis plans
// and scratch buffers, so one instance should be reused across the forward
// and inverse passes of a transform. Instances are not safe for concurrent
// use.
type FFT2 struct {
	nx, ny int
	row    lineFFT // length nx
	col    lineFFT // length ny

	lineIn  []complex128
	lineOut []complex128
}

// NewFFT2 returns a transform for nx-by-ny grids.
func NewFFT2(nx, ny int) (*FFT2, error) {
	row, err := newLineFFT(nx)
	if err != nil {
		return nil, err
	}
	col, err := newLineFFT(ny)
	if err != nil {
		return nil, err
	}
	n := max(nx, ny)
	return &FFT2{
		nx:      nx,
		ny:      ny,
		row:     row,
		col:     col,
		lineIn:  make([]complex128, n),
		lineOut: make([]complex128, n),
	}, nil
}

// Nx returns the column count the transform was planned for.
func (f *FFT2) Nx() int { return f.nx }

// Ny returns the row count the transform was planned for.
func (f *FFT2) Ny() int { return f.ny }

func (f *FFT2) checkLen(dst, src []complex128) error {
	want := f.nx * f.ny
	if len(dst) != want || len(src) != want {
		return fmt.Errorf("fft2 buffer length got dst=%d src=%d, want %d: %w",
			len(dst), len(src), want, grid.ErrInvalidShape)
	}
	return nil
}

// Forward computes the 2D forward transform of src into dst. dst and src may
// alias.
func (f *FFT2) Forward(dst, src []complex128) error {
	if err := f.checkLen(dst, src); err != nil {
		return err
	}
	return f.apply(dst, src, true)
}

// Inverse computes the normalized 2D inverse transform of src into dst. dst
// and src may alias.
func (f *FFT2) Inverse(dst, src []complex128) error {
	if err := f.checkLen(dst, src); err != nil {
		return err
	}
	return f.apply(dst, src, false)
}

// ForwardReal transforms a real-valued row-major grid into dst.
func (f *FFT2) ForwardReal(dst []complex128, src []float64) error {
	want := f.nx * f.ny
	if len(dst) != want || len(src) != want {
		return fmt.Errorf("fft2 buffer length got dst=%d src=%d, want %d: %w",
			len(dst), len(src), want, grid.ErrInvalidShape)
	}
	for i, v := range src {
		dst[i] = complex(v, 0)
	}
	return f.apply(dst, dst, true)
}

func (f *FFT2) apply(dst, src []complex128, forward bool) error {
	rowPass := f.row.inverse
	colPass := f.col.inverse
	if forward {
		rowPass = f.row.forward
		colPass = f.col.forward
	}

	rowIn := f.lineIn[:f.nx]
	rowOut := f.lineOut[:f.nx]
	for iy := 0; iy < f.ny; iy++ {
		copy(rowIn, src[iy*f.nx:(iy+1)*f.nx])
		if err := rowPass(rowOut, rowIn); err != nil {
			return fmt.Errorf("fft2 row pass failed: %w", err)
		}
		copy(dst[iy*f.nx:(iy+1)*f.nx], rowOut)
	}

	colIn := f.lineIn[:f.ny]
	colOut := f.lineOut[:f.ny]
	for ix := 0; ix < f.nx; ix++ {
		for iy := 0; iy < f.ny; iy++ {
			colIn[iy] = dst[iy*f.nx+ix]
		}
		if err := colPass(colOut, colIn); err != nil {
			return fmt.Errorf("fft2 column pass failed: %w", err)
		}
		for iy := 0; iy < f.ny; iy++ {
			dst[iy*f.nx+ix] = colOut[iy]
		}
	}
	return nil
}

// ForwardGrid transforms a real grid into its frequency-domain counterpart.
func ForwardGrid(g *grid.Grid) (*grid.Complex, error) {
	if g == nil {
		return nil, fmt.Errorf("grid must not be nil: %w", grid.ErrInvalidShape)
	}
	f, err := NewFFT2(g.Nx(), g.Ny())
	if err != nil {
		return nil, err
	}
	out := make([]complex128, g.Len())
	if err := f.ForwardReal(out, g.Data()); err != nil {
		return nil, err
	}
	return grid.ComplexFromSlice(g.Nx(), g.Ny(), out)
}

// InverseGrid transforms a frequency-domain grid back to the space domain.
// The result stays complex; Real() extracts the usable part.
func InverseGrid(c *grid.Complex) (*grid.Complex, error) {
	if c == nil {
		return nil, fmt.Errorf("grid must not be nil: %w", grid.ErrInvalidShape)
	}
	f, err := NewFFT2(c.Nx(), c.Ny())
	if err != nil {
		return nil, err
	}
	out := make([]complex128, c.Len())
	if err := f.Inverse(out, c.Data()); err != nil {
		return nil, err
	}
	return grid.ComplexFromSlice(c.Nx(), c.Ny(), out)
}

package spectral

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-potfield/potfield/grid"
)

func makeTestField(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(math.Sin(0.3*float64(i))+0.5*math.Cos(1.7*float64(i)), 0)
	}
	return out
}

func TestFFT2Roundtrip(t *testing.T) {
	tests := []struct {
		name string
		nx   int
		ny   int
	}{
		{"pow2 square", 8, 8},
		{"pow2 rectangle", 16, 4},
		{"non-pow2 even", 12, 10},
		{"odd axes", 7, 5},
		{"mixed backends", 8, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFFT2(tt.nx, tt.ny)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			src := makeTestField(tt.nx * tt.ny)
			bins := make([]complex128, len(src))
			back := make([]complex128, len(src))

			if err := f.Forward(bins, src); err != nil {
				t.Fatalf("forward failed: %v", err)
			}
			if err := f.Inverse(back, bins); err != nil {
				t.Fatalf("inverse failed: %v", err)
			}

			for i := range back {
				if cmplx.Abs(back[i]-src[i]) > 1e-9 {
					t.Errorf("back[%d] = %v, expected %v", i, back[i], src[i])
				}
			}
		})
	}
}

func TestFFT2RoundtripAliased(t *testing.T) {
	f, err := NewFFT2(8, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src := makeTestField(32)
	buf := make([]complex128, len(src))
	copy(buf, src)

	// In-place: dst and src are the same slice for both passes.
	if err := f.Forward(buf, buf); err != nil {
		t.Fatalf("forward failed: %v", err)
	}
	if err := f.Inverse(buf, buf); err != nil {
		t.Fatalf("inverse failed: %v", err)
	}

	for i := range buf {
		if cmplx.Abs(buf[i]-src[i]) > 1e-9 {
			t.Errorf("buf[%d] = %v, expected %v", i, buf[i], src[i])
		}
	}
}

func TestFFT2ImpulseSpectrum(t *testing.T) {
	f, err := NewFFT2(8, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src := make([]complex128, 32)
	src[0] = 1
	bins := make([]complex128, 32)
	if err := f.Forward(bins, src); err != nil {
		t.Fatalf("forward failed: %v", err)
	}

	// An impulse at the origin transforms to a flat spectrum of ones.
	for i := range bins {
		if cmplx.Abs(bins[i]-1) > 1e-12 {
			t.Errorf("bins[%d] = %v, expected 1", i, bins[i])
		}
	}
}

func TestFFT2ConstantSpectrum(t *testing.T) {
	const nx, ny = 6, 6 // exercises the general-size backend
	f, err := NewFFT2(nx, ny)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src := make([]float64, nx*ny)
	for i := range src {
		src[i] = 2.0
	}
	bins := make([]complex128, nx*ny)
	if err := f.ForwardReal(bins, src); err != nil {
		t.Fatalf("forward failed: %v", err)
	}

	wantDC := 2.0 * nx * ny
	if math.Abs(real(bins[0])-wantDC) > 1e-9 || math.Abs(imag(bins[0])) > 1e-9 {
		t.Errorf("DC = %v, expected %v", bins[0], wantDC)
	}
	for i := 1; i < len(bins); i++ {
		if cmplx.Abs(bins[i]) > 1e-9 {
			t.Errorf("bins[%d] = %v, expected 0", i, bins[i])
		}
	}
}

func TestFFT2SingleHarmonic(t *testing.T) {
	const nx, ny = 8, 8
	const p = 2 // cycles along x

	f, err := NewFFT2(nx, ny)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src := make([]float64, nx*ny)
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			src[iy*nx+ix] = math.Cos(2 * math.Pi * p * float64(ix) / nx)
		}
	}
	bins := make([]complex128, nx*ny)
	if err := f.ForwardReal(bins, src); err != nil {
		t.Fatalf("forward failed: %v", err)
	}

	// A pure cosine splits into two conjugate peaks of height nx*ny/2 at
	// the +p and -p column bins of the zero row.
	want := float64(nx*ny) / 2
	for i := range bins {
		mag := cmplx.Abs(bins[i])
		switch i {
		case p, nx - p:
			if math.Abs(mag-want) > 1e-9 {
				t.Errorf("peak bin %d magnitude = %v, expected %v", i, mag, want)
			}
		default:
			if mag > 1e-9 {
				t.Errorf("bin %d magnitude = %v, expected 0", i, mag)
			}
		}
	}
}

func TestFFT2LengthErrors(t *testing.T) {
	f, err := NewFFT2(4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	good := make([]complex128, 16)
	bad := make([]complex128, 15)

	if err := f.Forward(bad, good); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for short dst, got %v", err)
	}
	if err := f.Inverse(good, bad); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for short src, got %v", err)
	}
	if err := f.ForwardReal(good, make([]float64, 15)); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for short real src, got %v", err)
	}
}

func TestNewFFT2InvalidAxis(t *testing.T) {
	if _, err := NewFFT2(0, 4); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for zero nx, got %v", err)
	}
	if _, err := NewFFT2(4, -1); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for negative ny, got %v", err)
	}
}

func TestForwardGridInverseGridRoundtrip(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	g, err := grid.FromSlice(4, 3, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bins, err := ForwardGrid(g)
	if err != nil {
		t.Fatalf("forward failed: %v", err)
	}
	if bins.Nx() != 4 || bins.Ny() != 3 {
		t.Fatalf("spectrum shape = %dx%d, expected 4x3", bins.Nx(), bins.Ny())
	}

	back, err := InverseGrid(bins)
	if err != nil {
		t.Fatalf("inverse failed: %v", err)
	}
	re := back.Real()
	for i, v := range re.Data() {
		if math.Abs(v-data[i]) > 1e-9 {
			t.Errorf("roundtrip[%d] = %v, expected %v", i, v, data[i])
		}
	}
	for _, v := range back.Imag().Data() {
		if math.Abs(v) > 1e-9 {
			t.Errorf("imaginary residue %v, expected 0", v)
		}
	}
}

func TestForwardGridNil(t *testing.T) {
	if _, err := ForwardGrid(nil); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for nil grid, got %v", err)
	}
	if _, err := InverseGrid(nil); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for nil grid, got %v", err)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{8, true},
		{12, false},
		{1024, true},
		{0, false},
		{-4, false},
	}
	for _, tt := range tests {
		if got := isPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("isPowerOfTwo(%d) = %v, expected %v", tt.n, got, tt.want)
		}
	}
}

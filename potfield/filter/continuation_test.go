package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/synth"
)

func testGeometry(t *testing.T, nx, ny int) (*synth.Generator, *grid.Grid, *grid.Grid) {
	t.Helper()
	gen, err := synth.NewGenerator(nx, ny, 1.0, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x, y := gen.PlaneGrid()
	return gen, x, y
}

func gaussianField(t *testing.T, gen *synth.Generator) *grid.Grid {
	t.Helper()
	data, err := gen.GaussianSource(50, 8, 8, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return data
}

func TestContinuationZeroHeight(t *testing.T) {
	gen, x, y := testGeometry(t, 8, 8)
	data := gen.Constant(5)

	if _, err := Continuation(x, y, data, 0); !errors.Is(err, grid.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestContinuationShapeMismatch(t *testing.T) {
	_, x, y := testGeometry(t, 8, 8)
	data, _ := grid.New(9, 8)

	if _, err := Continuation(x, y, data, 100); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
}

func TestContinuationShapeInvariance(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 8)
	data := gaussianField(t, gen)

	res, err := Continuation(x, y, data, 2.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Nx() != data.Nx() || res.Ny() != data.Ny() {
		t.Errorf("shape = %dx%d, expected %dx%d", res.Nx(), res.Ny(), data.Nx(), data.Ny())
	}
}

func TestContinuationConstantPassthrough(t *testing.T) {
	tests := []struct {
		name   string
		height float64
	}{
		{"upward", 1.5},
		{"downward", -1.5},
		{"far upward", 25},
		{"far downward", -25},
	}

	gen, x, y := testGeometry(t, 16, 16)
	data := gen.Constant(42)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Continuation(x, y, data, tt.height)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// A constant grid has energy only in the DC bin, where the
			// operator is exp(0) = 1; it must pass through unchanged.
			if !grid.EqualApprox(res.Real(), data, 1e-12) {
				t.Errorf("constant grid did not pass through at height %v", tt.height)
			}
			for _, v := range res.Imag().Data() {
				if math.Abs(v) > 1e-12 {
					t.Errorf("imaginary residue %v, expected 0", v)
				}
			}
		})
	}
}

func TestContinuationRoundtrip(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 16)
	data := gaussianField(t, gen)

	up, err := Continuation(x, y, data, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := Continuation(x, y, up.Real(), -2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !grid.EqualApprox(back.Real(), data, 1e-8) {
		t.Errorf("continuation roundtrip did not recover the input")
	}
}

func TestContinuationUpwardSmooths(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 16)
	data := gaussianField(t, gen)

	res, err := Continuation(x, y, data, 4.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := grid.Calculate(data)
	after := grid.Calculate(res.Real())
	if after.PeakAbs >= before.PeakAbs {
		t.Errorf("upward continuation peak = %v, expected below %v", after.PeakAbs, before.PeakAbs)
	}
}

func TestContinuationStrictOverflow(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 16)
	data := gaussianField(t, gen)

	// Extreme downward continuation overflows the exponential operator.
	res, err := Continuation(x, y, data, -200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := grid.CountNonFinite(res.Real().Data()); n == 0 {
		t.Fatalf("expected non-finite samples to propagate")
	}

	if _, err := Continuation(x, y, data, -200, WithStrict()); !errors.Is(err, grid.ErrNonFinite) {
		t.Errorf("expected ErrNonFinite in strict mode, got %v", err)
	}
}

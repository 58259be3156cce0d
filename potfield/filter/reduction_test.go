package filter

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
)

func TestReductionIdentity(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 16)
	dir := spectral.Direction{Inclination: 60, Declination: 30}

	data, err := gen.DipoleAnomaly(dir, dir, 8, 8, 5, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := Reduction(x, y, data, dir, dir, dir, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With old == new directions the operator is 1 everywhere except the
	// zeroed DC bin, so the result is the input minus its mean.
	mean := grid.Calculate(data).Mean
	want := data.Clone()
	for i, v := range want.Data() {
		want.Data()[i] = v - mean
	}
	if !grid.EqualApprox(res.Real(), want, 1e-6) {
		t.Errorf("identity reduction did not return mean-removed input")
	}
}

func TestReductionShapeMismatch(t *testing.T) {
	_, x, y := testGeometry(t, 8, 8)
	data, _ := grid.New(8, 9)
	dir := spectral.Direction{Inclination: 45}

	if _, err := Reduction(x, y, data, dir, dir, dir, dir); !errors.Is(err, grid.ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
}

func TestReductionShapeInvariance(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 8)
	data := gaussianField(t, gen)
	oldDir := spectral.Direction{Inclination: -45, Declination: -20}
	newDir := spectral.Direction{Inclination: 90}

	res, err := Reduction(x, y, data, oldDir, oldDir, newDir, newDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Nx() != data.Nx() || res.Ny() != data.Ny() {
		t.Errorf("shape = %dx%d, expected %dx%d", res.Nx(), res.Ny(), data.Nx(), data.Ny())
	}
}

func TestReductionEquatorialSingularity(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 16)
	data := gaussianField(t, gen)

	// At zero inclination the old-direction factors vanish along the
	// kx = 0 line, so the operator divides by zero there.
	equator := spectral.Direction{Inclination: 0, Declination: 0}
	pole := spectral.Direction{Inclination: 90}

	res, err := Reduction(x, y, data, equator, equator, pole, pole)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := grid.CountNonFinite(res.Real().Data()); n == 0 {
		t.Fatalf("expected non-finite samples to propagate")
	}

	_, err = Reduction(x, y, data, equator, equator, pole, pole, WithStrict())
	if !errors.Is(err, grid.ErrNonFinite) {
		t.Errorf("expected ErrNonFinite in strict mode, got %v", err)
	}
}

func TestReductionStrictCleanInput(t *testing.T) {
	gen, x, y := testGeometry(t, 16, 16)
	data := gaussianField(t, gen)
	oldDir := spectral.Direction{Inclination: 60, Declination: 10}
	newDir := spectral.Direction{Inclination: 90}

	if _, err := Reduction(x, y, data, oldDir, oldDir, newDir, newDir, WithStrict()); err != nil {
		t.Errorf("unexpected error on well-conditioned directions: %v", err)
	}
}

// Package gradient provides wavenumber-domain derivative operators for
// gridded potential-field data: directional derivatives of arbitrary order
// and the horizontal/total gradient magnitudes the tilt-family transforms
// are built from.
package gradient

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-potfield/potfield/grid"
	"github.com/cwbudde/algo-potfield/potfield/spectral"
)

func checkOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("derivative order must be >= 1: %d: %w", order, grid.ErrInvalidParameter)
	}
	return nil
}

// cpow raises c to a small integer power by repeated multiplication, which
// keeps purely real and purely imaginary factors on their axes.
func cpow(c complex128, n int) complex128 {
	out := complex(1, 0)
	for i := 0; i < n; i++ {
		out *= c
	}
	return out
}

// apply transforms data, scales every bin by factor(kx, ky, |k|) and
// returns the real part of the inverse transform.
func apply(x, y, data *grid.Grid, factor func(kx, ky, k float64) complex128) (*grid.Grid, error) {
	if err := grid.CheckSameShape(x, y, data); err != nil {
		return nil, err
	}
	kx, ky, err := spectral.Wavenumber(x, y)
	if err != nil {
		return nil, err
	}

	f, err := spectral.NewFFT2(data.Nx(), data.Ny())
	if err != nil {
		return nil, err
	}
	buf := make([]complex128, data.Len())
	if err := f.ForwardReal(buf, data.Data()); err != nil {
		return nil, err
	}

	kxd, kyd := kx.Data(), ky.Data()
	radial := make([]float64, len(kxd))
	vecmath.Magnitude(radial, kxd, kyd)
	for i := range buf {
		buf[i] *= factor(kxd[i], kyd[i], radial[i])
	}

	if err := f.Inverse(buf, buf); err != nil {
		return nil, err
	}
	out := make([]float64, len(buf))
	for i, c := range buf {
		out[i] = real(c)
	}
	return grid.FromSlice(data.Nx(), data.Ny(), out)
}

// XDeriv computes the derivative of data along the x axis to the given
// order, multiplying the spectrum by (i*kx)^order.
func XDeriv(x, y, data *grid.Grid, order int) (*grid.Grid, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	return apply(x, y, data, func(kx, _, _ float64) complex128 {
		return cpow(complex(0, kx), order)
	})
}

// YDeriv computes the derivative of data along the y axis to the given
// order, multiplying the spectrum by (i*ky)^order.
func YDeriv(x, y, data *grid.Grid, order int) (*grid.Grid, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	return apply(x, y, data, func(_, ky, _ float64) complex128 {
		return cpow(complex(0, ky), order)
	})
}

// ZDeriv computes the vertical derivative of data to the given order,
// multiplying the spectrum by |k|^order.
func ZDeriv(x, y, data *grid.Grid, order int) (*grid.Grid, error) {
	if err := checkOrder(order); err != nil {
		return nil, err
	}
	return apply(x, y, data, func(_, _, k float64) complex128 {
		return complex(cpowReal(k, order), 0)
	})
}

func cpowReal(v float64, n int) float64 {
	out := 1.0
	for i := 0; i < n; i++ {
		out *= v
	}
	return out
}

// HorizontalGradient returns the magnitude of the horizontal gradient,
// sqrt(dx^2 + dy^2), of the first-order x and y derivatives.
func HorizontalGradient(x, y, data *grid.Grid) (*grid.Grid, error) {
	dx, err := XDeriv(x, y, data, 1)
	if err != nil {
		return nil, err
	}
	dy, err := YDeriv(x, y, data, 1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, data.Len())
	vecmath.Magnitude(out, dx.Data(), dy.Data())
	return grid.FromSlice(data.Nx(), data.Ny(), out)
}

// TotalGradient returns the total gradient magnitude (analytic signal
// amplitude), sqrt(dx^2 + dy^2 + dz^2), built from the horizontal gradient
// and the first-order vertical derivative.
func TotalGradient(x, y, data *grid.Grid) (*grid.Grid, error) {
	hgrad, err := HorizontalGradient(x, y, data)
	if err != nil {
		return nil, err
	}
	dz, err := ZDeriv(x, y, data, 1)
	if err != nil {
		return nil, err
	}
	out := make([]float64, data.Len())
	vecmath.Magnitude(out, hgrad.Data(), dz.Data())
	return grid.FromSlice(data.Nx(), data.Ny(), out)
}

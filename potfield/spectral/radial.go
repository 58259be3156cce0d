package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-potfield/potfield/grid"
)

const defaultRadialBins = 32

// RadialSpectrum is a radially averaged power spectrum: mean |F|^2 over
// annular wavenumber bins of equal width.
type RadialSpectrum struct {
	K     []float64 // bin-center radial wavenumber
	Power []float64 // mean power per bin; NaN where Count is zero
	Count []int     // samples averaged per bin
}

// RadialPowerSpectrum averages the power of a transformed grid over annular
// wavenumber bins. Bins span [0, kmax] where kmax is the smaller of the two
// axis extremes, so every bin is fully sampled azimuthally. bins <= 0 selects
// a default of 32.
func RadialPowerSpectrum(kx, ky *grid.Grid, coeff *grid.Complex, bins int) (*RadialSpectrum, error) {
	if err := grid.CheckSameShape(kx, ky); err != nil {
		return nil, err
	}
	if coeff == nil || coeff.Nx() != kx.Nx() || coeff.Ny() != kx.Ny() {
		return nil, fmt.Errorf("coefficients must share the wavenumber grid shape: %w", grid.ErrInvalidShape)
	}
	if bins <= 0 {
		bins = defaultRadialBins
	}

	n := coeff.Len()
	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range coeff.Data() {
		re[i] = real(c)
		im[i] = imag(c)
	}
	power := make([]float64, n)
	vecmath.Power(power, re, im)

	kxd, kyd := kx.Data(), ky.Data()
	kmax := math.Min(maxAbs(kxd), maxAbs(kyd))
	if kmax <= 0 {
		return nil, fmt.Errorf("wavenumber grids carry no nonzero frequencies: %w", grid.ErrInvalidParameter)
	}
	width := kmax / float64(bins)

	rs := &RadialSpectrum{
		K:     make([]float64, bins),
		Power: make([]float64, bins),
		Count: make([]int, bins),
	}
	for i := range rs.K {
		rs.K[i] = (float64(i) + 0.5) * width
	}

	for i := range power {
		k := math.Hypot(kxd[i], kyd[i])
		if k > kmax {
			continue
		}
		bin := int(k / width)
		if bin >= bins {
			bin = bins - 1
		}
		rs.Power[bin] += power[i]
		rs.Count[bin]++
	}

	for i := range rs.Power {
		if rs.Count[i] == 0 {
			rs.Power[i] = math.NaN()
			continue
		}
		rs.Power[i] /= float64(rs.Count[i])
	}
	return rs, nil
}

// DepthEstimate fits ln P(k) = a + b*k by least squares over the populated
// bins of a radial spectrum and returns -b/2, the classic top-of-source
// depth estimate for potential-field data. At least two populated bins with
// positive power are required.
func DepthEstimate(rs *RadialSpectrum) (float64, error) {
	if rs == nil {
		return 0, fmt.Errorf("radial spectrum must not be nil: %w", grid.ErrInvalidParameter)
	}

	var ks, logP []float64
	for i := range rs.K {
		if rs.Count[i] == 0 || !(rs.Power[i] > 0) || math.IsInf(rs.Power[i], 0) {
			continue
		}
		ks = append(ks, rs.K[i])
		logP = append(logP, math.Log(rs.Power[i]))
	}
	if len(ks) < 2 {
		return 0, fmt.Errorf("depth estimate needs at least 2 usable bins: %d: %w", len(ks), grid.ErrInvalidParameter)
	}

	_, slope := stat.LinearRegression(ks, logP, nil, false)
	return -slope / 2, nil
}

func maxAbs(data []float64) float64 {
	m := 0.0
	for _, v := range data {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

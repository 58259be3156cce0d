package grid

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps, using a relative
// comparison for large magnitudes and an absolute one near zero.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// EqualApprox reports whether a and b share shape and every sample pair is
// NearlyEqual within eps.
func EqualApprox(a, b *Grid, eps float64) bool {
	if a == nil || b == nil || !a.SameShape(b) {
		return false
	}
	for i := range a.data {
		if !NearlyEqual(a.data[i], b.data[i], eps) {
			return false
		}
	}
	return true
}

// AllFinite reports whether data contains no NaN or infinity.
func AllFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CountNonFinite returns the number of NaN or infinite samples in data.
// Elementwise divisions at singular wavenumbers produce such samples; this
// helper lets callers quantify them without failing.
func CountNonFinite(data []float64) int {
	n := 0
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			n++
		}
	}
	return n
}

// CountNonFiniteComplex returns the number of samples whose real or
// imaginary part is NaN or infinite.
func CountNonFiniteComplex(data []complex128) int {
	n := 0
	for _, v := range data {
		re, im := real(v), imag(v)
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			n++
		}
	}
	return n
}

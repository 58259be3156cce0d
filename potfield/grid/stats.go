package grid

import "math"

// Stats holds single-pass statistics of a grid. Aggregates cover finite
// samples only; grids coming out of ratio transforms can legitimately carry
// NaN or infinities at singular points, and those are counted in NonFinite
// instead of poisoning every moment.
type Stats struct {
	Len       int
	NonFinite int

	Min    float64
	MinPos int // flat row-major index
	Max    float64
	MaxPos int

	Mean     float64
	StdDev   float64
	RMS      float64
	Energy   float64 // sum of squares
	Range    float64 // max - min
	PeakAbs  float64 // max(|min|, |max|)
	Variance float64
}

// Calculate computes grid statistics in a single pass. Variance uses
// Welford's online update for numerical stability.
func Calculate(g *Grid) Stats {
	s := Stats{Len: g.Len()}
	if s.Len == 0 {
		return s
	}

	var (
		mean   float64
		m2     float64
		sumSq  float64
		finite int
		minSet bool
	)

	for i, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s.NonFinite++
			continue
		}

		finite++
		delta := v - mean
		mean += delta / float64(finite)
		m2 += delta * (v - mean)
		sumSq += v * v

		if !minSet {
			s.Min, s.Max = v, v
			s.MinPos, s.MaxPos = i, i
			minSet = true
			continue
		}
		if v < s.Min {
			s.Min = v
			s.MinPos = i
		}
		if v > s.Max {
			s.Max = v
			s.MaxPos = i
		}
	}

	if finite == 0 {
		s.Min = math.NaN()
		s.Max = math.NaN()
		s.Mean = math.NaN()
		s.StdDev = math.NaN()
		s.RMS = math.NaN()
		s.Range = math.NaN()
		s.PeakAbs = math.NaN()
		s.Variance = math.NaN()
		return s
	}

	s.Mean = mean
	s.Variance = m2 / float64(finite)
	s.StdDev = math.Sqrt(s.Variance)
	s.Energy = sumSq
	s.RMS = math.Sqrt(sumSq / float64(finite))
	s.Range = s.Max - s.Min
	s.PeakAbs = math.Max(math.Abs(s.Min), math.Abs(s.Max))
	return s
}

package domain

import "math"

// interpolate maps x from [x0, x1] onto [y0, y1]. x is clamped to the band
// first, so the result always lies between y0 and y1. NaN maps to y0.
func interpolate(x, x0, x1, y0, y1 float64) float64 {
	switch {
	case math.IsNaN(x), x <= x0:
		return y0
	case x >= x1:
		return y1
	}
	slope := (y1 - y0) / (x1 - x0)
	return slope*(x-x0) + y0
}

// RoundToNearestHalf quantizes v to a multiple of 0.5. Ties go to the even
// multiple of 0.5 (half-to-even on v*2), so 4.25 → 4.0 and 4.75 → 5.0.
func RoundToNearestHalf(v float64) float64 {
	return math.RoundToEven(v*2) / 2
}

// SSTScore rates sea surface temperature in °C.
func SSTScore(sst float64) float64 {
	switch {
	case sst >= 31:
		return interpolate(sst, 31, 35, 8, 10)
	case sst >= 28:
		return interpolate(sst, 28, 31, 5, 8)
	case sst >= 26:
		return interpolate(sst, 26, 28, 2, 5)
	default:
		return interpolate(sst, 20, 26, 0, 3)
	}
}

// ShearScore rates vertical wind shear in knots. Higher shear scores lower.
func ShearScore(shear float64) float64 {
	switch {
	case shear < 5:
		return interpolate(shear, 0, 5, 10, 8)
	case shear < 10:
		return interpolate(shear, 5, 10, 8, 6)
	case shear < 15:
		return interpolate(shear, 10, 15, 6, 4)
	case shear <= 25:
		return interpolate(shear, 15, 25, 4, 2)
	default:
		return interpolate(shear, 25, 40, 2, 0)
	}
}

// HumidityScore rates mid-level relative humidity in percent.
func HumidityScore(humidity float64) float64 {
	switch {
	case humidity > 75:
		return interpolate(humidity, 75, 100, 8, 10)
	case humidity >= 50:
		return interpolate(humidity, 50, 75, 4, 7)
	case humidity >= 40:
		return 3
	default:
		return interpolate(humidity, 0, 40, 0, 2)
	}
}

// OHCScore rates ocean heat content in kJ/cm².
func OHCScore(ohc float64) float64 {
	switch {
	case ohc < 25:
		return 1
	case ohc < 75:
		return interpolate(ohc, 25, 74, 2, 4)
	case ohc < 125:
		return interpolate(ohc, 75, 124, 4, 8)
	case ohc < 150:
		return 9
	default:
		return 10
	}
}

// FlowScore rates upper-level divergence or lower-level convergence; both
// share one table. Values outside the three closed bands score 10.
func FlowScore(v float64) float64 {
	switch {
	case v >= 0 && v <= 10:
		return interpolate(v, 0, 10, 0, 5)
	case v >= 11 && v <= 20:
		return interpolate(v, 11, 20, 5, 7)
	case v >= 21 && v <= 31:
		return interpolate(v, 21, 31, 7, 9)
	default:
		return 10
	}
}

// DivergenceScore rates upper-level divergence.
func DivergenceScore(divergence float64) float64 { return FlowScore(divergence) }

// ConvergenceScore rates lower-level convergence.
func ConvergenceScore(convergence float64) float64 { return FlowScore(convergence) }

// ScoreObservation computes the quantized sub-scores for obs. The fifth
// factor follows the profile.
func ScoreObservation(p Profile, obs Observation) SubScores {
	scores := SubScores{
		SST:         RoundToNearestHalf(SSTScore(obs.SST)),
		Shear:       RoundToNearestHalf(ShearScore(obs.WindShear)),
		Humidity:    RoundToNearestHalf(HumidityScore(obs.Humidity)),
		Divergence:  RoundToNearestHalf(DivergenceScore(obs.UpperDivergence)),
		FifthFactor: p.FifthFactor,
	}
	switch p.FifthFactor {
	case FactorConvergence:
		scores.Fifth = RoundToNearestHalf(ConvergenceScore(obs.LowerConvergence))
	default:
		scores.Fifth = RoundToNearestHalf(OHCScore(obs.OceanHeatContent))
	}
	return scores
}

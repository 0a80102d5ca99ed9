package domain

// Composite weights. They sum to 1.
const (
	WeightSST        = 0.35
	WeightShear      = 0.30
	WeightHumidity   = 0.25
	WeightDivergence = 0.05
	WeightFifth      = 0.05
)

const (
	minIndex = 0.0
	maxIndex = 10.0
)

// CompositeIndex returns the unquantized weighted sum of the sub-scores.
// Each product is rounded to float64 before summing so the compiler cannot
// fuse it into a multiply-add; tie values must quantize identically on every
// architecture.
func CompositeIndex(s SubScores) float64 {
	return float64(WeightSST*s.SST) +
		float64(WeightShear*s.Shear) +
		float64(WeightHumidity*s.Humidity) +
		float64(WeightDivergence*s.Divergence) +
		float64(WeightFifth*s.Fifth)
}

// SizeAdjustment returns the amount added to the index for a cyclone of the
// given size whose unadjusted category is c. Only small and large cyclones
// are adjusted; everything else returns 0.
func SizeAdjustment(size SizeClass, c Category) float64 {
	switch size {
	case SizeSmall:
		if c.intensifying() {
			return 0.75
		}
		return -0.75
	case SizeLarge:
		if c.intensifying() {
			return -0.5
		}
		return 0.5
	default:
		return 0
	}
}

// ApplySizeAdjustment adds the size adjustment to index, re-quantizes and
// clamps the result to [0, 10]. The boolean reports whether size qualified
// for an adjustment at all.
func ApplySizeAdjustment(index float64, size SizeClass, c Category) (float64, bool) {
	if size != SizeSmall && size != SizeLarge {
		return index, false
	}
	adjusted := RoundToNearestHalf(index + SizeAdjustment(size, c))
	return min(maxIndex, max(minIndex, adjusted)), true
}

// Assess runs the full engine for one observation: sub-scores, composite,
// quantization, classification and, when the profile enables it, the size
// adjustment with re-classification.
func Assess(p Profile, obs Observation, size SizeClass) Assessment {
	if size == "" {
		size = SizeNone
	}
	scores := ScoreObservation(p, obs)
	raw := CompositeIndex(scores)
	base := RoundToNearestHalf(raw)
	baseCategory := p.Thresholds.Classify(base)

	a := Assessment{
		Profile:      p.Name,
		Observation:  obs,
		SubScores:    scores,
		RawIndex:     raw,
		BaseIndex:    base,
		BaseCategory: baseCategory,
		Size:         size,
		Index:        base,
		Category:     baseCategory,
		ComputedAt:   clock.Now(),
	}

	if !p.SizeAdjustment {
		return a
	}
	final, adjusted := ApplySizeAdjustment(base, size, baseCategory)
	if !adjusted {
		return a
	}
	a.Adjusted = true
	a.Adjustment = SizeAdjustment(size, baseCategory)
	a.Index = final
	a.Category = p.Thresholds.Classify(final)
	return a
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// Observation is the set of scalar measurements scored by the engine.
// Bounds are the caller's concern; every real number is accepted.
type Observation struct {
	SST              float64 `json:"sst"`                // sea surface temperature, °C
	WindShear        float64 `json:"wind_shear"`         // knots
	Humidity         float64 `json:"humidity"`           // relative humidity, %
	UpperDivergence  float64 `json:"upper_divergence"`   // unitless
	OceanHeatContent float64 `json:"ocean_heat_content"` // kJ/cm²
	LowerConvergence float64 `json:"lower_convergence"`  // unitless
}

// Factor names a scored input.
type Factor string

const (
	FactorSST         Factor = "sst"
	FactorShear       Factor = "wind_shear"
	FactorHumidity    Factor = "humidity"
	FactorDivergence  Factor = "upper_divergence"
	FactorOHC         Factor = "ocean_heat_content"
	FactorConvergence Factor = "lower_convergence"
)

// Label returns the human-readable factor name.
func (f Factor) Label() string {
	switch f {
	case FactorSST:
		return "Sea Surface Temperature"
	case FactorShear:
		return "Wind Shear"
	case FactorHumidity:
		return "Humidity"
	case FactorDivergence:
		return "Upper Divergence"
	case FactorOHC:
		return "Ocean Heat Content"
	case FactorConvergence:
		return "Lower Convergence"
	default:
		return string(f)
	}
}

// SubScores holds the quantized 0–10 rating of each factor.
type SubScores struct {
	SST         float64 `json:"sst"`
	Shear       float64 `json:"wind_shear"`
	Humidity    float64 `json:"humidity"`
	Divergence  float64 `json:"upper_divergence"`
	Fifth       float64 `json:"fifth"`
	FifthFactor Factor  `json:"fifth_factor"`
}

// SizeClass is the optional tropical cyclone size modifier.
type SizeClass string

const (
	SizeNone    SizeClass = "none"
	SizeSmall   SizeClass = "small"
	SizeAverage SizeClass = "average"
	SizeLarge   SizeClass = "large"
)

// ParseSizeClass accepts the size names case-insensitively. An empty string
// and the dashboard's "None (No Adjustment)" option both mean SizeNone.
func ParseSizeClass(s string) (SizeClass, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "", "none", "none (no adjustment)":
		return SizeNone, nil
	case "small":
		return SizeSmall, nil
	case "average":
		return SizeAverage, nil
	case "large":
		return SizeLarge, nil
	default:
		return "", fmt.Errorf("unknown size class %q", s)
	}
}

// Assessment is the full output of one engine run.
type Assessment struct {
	Profile      string      `json:"profile"`
	Observation  Observation `json:"observation"`
	SubScores    SubScores   `json:"sub_scores"`
	RawIndex     float64     `json:"raw_index"`
	BaseIndex    float64     `json:"base_index"`
	BaseCategory Category    `json:"base_category"`
	Size         SizeClass   `json:"size"`
	Adjusted     bool        `json:"adjusted"`
	Adjustment   float64     `json:"adjustment"`
	Index        float64     `json:"index"`
	Category     Category    `json:"category"`
	ComputedAt   time.Time   `json:"computed_at"`
}

package domain

import (
	"fmt"
	"strings"
)

// Profile selects one variant of the index: which factor fills the fifth
// slot, which threshold table classifies the result, and whether the size
// adjustment runs. A process uses a single profile chosen at startup.
type Profile struct {
	Name           string     `json:"name"`
	FifthFactor    Factor     `json:"fifth_factor"`
	Thresholds     Thresholds `json:"thresholds"`
	SizeAdjustment bool       `json:"size_adjustment"`
}

var (
	// ProfileOHC scores ocean heat content and applies the size adjustment.
	ProfileOHC = Profile{
		Name:           "ohc",
		FifthFactor:    FactorOHC,
		Thresholds:     Thresholds{VeryHigh: 8.0, High: 6.5, Medium: 5.0, Low: 3.5},
		SizeAdjustment: true,
	}

	// ProfileConvergence scores lower-level convergence with the stricter
	// threshold table and no size adjustment.
	ProfileConvergence = Profile{
		Name:        "convergence",
		FifthFactor: FactorConvergence,
		Thresholds:  Thresholds{VeryHigh: 8.5, High: 7.0, Medium: 5.5, Low: 4.0},
	}
)

// ProfileByName resolves a profile name case-insensitively.
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProfileOHC.Name:
		return ProfileOHC, nil
	case ProfileConvergence.Name:
		return ProfileConvergence, nil
	default:
		return Profile{}, fmt.Errorf("unknown profile %q", name)
	}
}

// Categories returns the display metadata for every category in ascending
// order, with ranges taken from the profile's thresholds.
func (p Profile) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, p.Thresholds.Describe(c))
	}
	return out
}

package domain

import "fmt"

// Category is the five-level intensification potential classification.
type Category string

const (
	CategoryVeryLow  Category = "Very Low"
	CategoryLow      Category = "Low"
	CategoryMedium   Category = "Medium"
	CategoryHigh     Category = "High"
	CategoryVeryHigh Category = "Very High"
)

// Categories lists every category in ascending order.
var Categories = []Category{CategoryVeryLow, CategoryLow, CategoryMedium, CategoryHigh, CategoryVeryHigh}

// CategoryInfo is the display metadata the dashboard attaches to a category.
type CategoryInfo struct {
	Category    Category `json:"category"`
	Color       string   `json:"color"`
	Background  string   `json:"background"`
	Description string   `json:"description"`
	Range       string   `json:"range"`
}

var categoryStyles = map[Category]CategoryInfo{
	CategoryVeryHigh: {
		Color:       "#FF6B6B",
		Background:  "#FFEBEE",
		Description: "Significant intensification is expected, with potential for rapid intensification.",
	},
	CategoryHigh: {
		Color:       "#FF9800",
		Background:  "#FFF3E0",
		Description: "Steady intensification is expected.",
	},
	CategoryMedium: {
		Color:       "#FFC107",
		Background:  "#FFFDE7",
		Description: "Limited intensification expected.",
	},
	CategoryLow: {
		Color:       "#4CAF50",
		Background:  "#E8F5E8",
		Description: "Intensification is unlikely.",
	},
	CategoryVeryLow: {
		Color:       "#2196F3",
		Background:  "#E3F2FD",
		Description: "Intensification is very unlikely.",
	},
}

// intensifying reports whether the size adjustment treats c as favourable.
func (c Category) intensifying() bool {
	return c == CategoryMedium || c == CategoryHigh || c == CategoryVeryHigh
}

// Thresholds holds the inclusive lower bound of each category above Very Low.
type Thresholds struct {
	VeryHigh float64 `json:"very_high"`
	High     float64 `json:"high"`
	Medium   float64 `json:"medium"`
	Low      float64 `json:"low"`
}

// Classify maps a composite index onto a category, checking bounds from the
// top down.
func (t Thresholds) Classify(index float64) Category {
	switch {
	case index >= t.VeryHigh:
		return CategoryVeryHigh
	case index >= t.High:
		return CategoryHigh
	case index >= t.Medium:
		return CategoryMedium
	case index >= t.Low:
		return CategoryLow
	default:
		return CategoryVeryLow
	}
}

// Describe returns the display metadata of c, with the index range it covers
// under t, e.g. "5.0-6.4".
func (t Thresholds) Describe(c Category) CategoryInfo {
	info := categoryStyles[c]
	info.Category = c
	switch c {
	case CategoryVeryHigh:
		info.Range = fmt.Sprintf("%.1f-10", t.VeryHigh)
	case CategoryHigh:
		info.Range = fmt.Sprintf("%.1f-%.1f", t.High, t.VeryHigh-0.1)
	case CategoryMedium:
		info.Range = fmt.Sprintf("%.1f-%.1f", t.Medium, t.High-0.1)
	case CategoryLow:
		info.Range = fmt.Sprintf("%.1f-%.1f", t.Low, t.Medium-0.1)
	case CategoryVeryLow:
		info.Range = fmt.Sprintf("0-%.1f", t.Low-0.1)
	}
	return info
}

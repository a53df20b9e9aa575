package matching

import "github.com/mreyes/campus-match/internal/types"

// RadarCategories is the fixed category order of the radar projection. The
// order matches types.Breakdown.Factors.
var RadarCategories = []string{
	"Technical Skills",
	"Soft Skills",
	"Languages",
	"Experience",
	"Career",
	"Academic Term",
	"Modality",
}

// ProjectRadar maps a breakdown onto the radar chart payload. Candidate
// values are the factor scores scaled to 0-100 with one decimal place; the
// required polygon is always all 100s, representing full satisfaction of the
// requisition.
func ProjectRadar(b types.Breakdown) types.RadarChart {
	factors := b.Factors()

	chart := types.RadarChart{
		Categories: RadarCategories,
		Required:   make([]float64, len(factors)),
		Candidate:  make([]float64, len(factors)),
	}
	for i, f := range factors {
		chart.Required[i] = 100
		chart.Candidate[i] = round1(f * 100)
	}
	return chart
}

// RadarValues returns the label-to-value form of the projection, the shape
// persisted with match records.
func RadarValues(b types.Breakdown) map[string]float64 {
	factors := b.Factors()
	values := make(map[string]float64, len(factors))
	for i, f := range factors {
		values[RadarCategories[i]] = round1(f * 100)
	}
	return values
}

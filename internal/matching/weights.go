package matching

import (
	"fmt"
	"math"

	"github.com/mreyes/campus-match/internal/types"
)

// weightSumTolerance bounds the float drift allowed when checking that a
// weight vector sums to 1.
const weightSumTolerance = 1e-6

// Weights is the factor weight vector used to aggregate a breakdown into an
// overall percentage. It is injected into the evaluator, never read from a
// package-level variable, so a deployment can override it through
// configuration.
type Weights struct {
	TechnicalSkills float64 `json:"technical_skills"`
	SoftSkills      float64 `json:"soft_skills"`
	Languages       float64 `json:"languages"`
	Experience      float64 `json:"experience"`
	Career          float64 `json:"career"`
	AcademicTerm    float64 `json:"academic_term"`
	Modality        float64 `json:"modality"`
}

// DefaultWeights returns the production weight vector. Technical skills
// dominate at 30%; academic term and modality are tie-breakers at 5% each.
func DefaultWeights() Weights {
	return Weights{
		TechnicalSkills: 0.30,
		SoftSkills:      0.15,
		Languages:       0.15,
		Experience:      0.15,
		Career:          0.15,
		AcademicTerm:    0.05,
		Modality:        0.05,
	}
}

func (w Weights) vector() []float64 {
	return []float64{
		w.TechnicalSkills,
		w.SoftSkills,
		w.Languages,
		w.Experience,
		w.Career,
		w.AcademicTerm,
		w.Modality,
	}
}

// Validate checks that every weight is non-negative and that the vector sums
// to 1 within tolerance.
func (w Weights) Validate() error {
	sum := 0.0
	for _, v := range w.vector() {
		if v < 0 {
			return fmt.Errorf("weights must be non-negative, got %v", v)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %v", sum)
	}
	return nil
}

// Overall aggregates a breakdown into the overall match percentage,
// rounded to two decimal places.
func (w Weights) Overall(b types.Breakdown) float64 {
	factors := b.Factors()
	weights := w.vector()

	total := 0.0
	for i := range weights {
		total += weights[i] * factors[i]
	}

	return round2(total * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

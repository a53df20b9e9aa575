package types

import (
	"time"

	"github.com/google/uuid"
)

// Breakdown holds the seven per-dimension factor scores of one evaluation.
// Every field is always present and constrained to [0,1]; a dimension with
// no requirement scores 1.0, never a missing value.
type Breakdown struct {
	TechnicalSkills float64 `json:"technical_skills"`
	SoftSkills      float64 `json:"soft_skills"`
	Languages       float64 `json:"languages"`
	Experience      float64 `json:"experience"`
	Career          float64 `json:"career"`
	AcademicTerm    float64 `json:"academic_term"`
	Modality        float64 `json:"modality"`
}

// Factors returns the scores in the fixed category order used by the radar
// projection and the aggregator.
func (b Breakdown) Factors() []float64 {
	return []float64{
		b.TechnicalSkills,
		b.SoftSkills,
		b.Languages,
		b.Experience,
		b.Career,
		b.AcademicTerm,
		b.Modality,
	}
}

// InRange reports whether every factor score lies in [0,1].
func (b Breakdown) InRange() bool {
	for _, f := range b.Factors() {
		if f < 0 || f > 1 {
			return false
		}
	}
	return true
}

// RadarChart is the visualization-ready projection of a breakdown. Required
// is the reference polygon (always all 100s); Candidate holds the factor
// scores scaled to 0-100 with one decimal place.
type RadarChart struct {
	Categories []string  `json:"categories"`
	Required   []float64 `json:"required"`
	Candidate  []float64 `json:"candidate"`
}

// MatchRecord is a persisted match between one requisition and one candidate.
// At most one record exists per (requisition, candidate) pair. Once created
// it is immutable except for the viewed flag.
type MatchRecord struct {
	ID            uuid.UUID          `json:"id"`
	RequisitionID uuid.UUID          `json:"requisition_id"`
	CandidateID   string             `json:"candidate_id"`
	Percentage    float64            `json:"percentage"`
	Breakdown     Breakdown          `json:"breakdown"`
	Radar         map[string]float64 `json:"radar"`

	// EmbeddingSimilarity is reserved for an externally computed semantic
	// score. This service never sets it.
	EmbeddingSimilarity *float64 `json:"embedding_similarity,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	Viewed    bool       `json:"viewed"`
	ViewedAt  *time.Time `json:"viewed_at,omitempty"`
}

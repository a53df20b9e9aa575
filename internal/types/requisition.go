package types

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceTier is the minimum prior experience a requisition asks for.
// The tiers form a fixed ordered set; the matching engine maps each tier to
// an approximate year count.
type ExperienceTier string

// Experience tiers, lowest to highest.
const (
	TierNone        ExperienceTier = "No experience"
	TierUnderOne    ExperienceTier = "Less than 1 year"
	TierOneToTwo    ExperienceTier = "1-2 years"
	TierTwoToThree  ExperienceTier = "2-3 years"
	TierThreeToFive ExperienceTier = "3-5 years"
	TierOverFive    ExperienceTier = "More than 5 years"
)

// LanguageRequirement is a language a requisition requires, with the minimum
// acceptable proficiency level.
type LanguageRequirement struct {
	Name     string `json:"name"`
	MinLevel string `json:"min_level"`
}

// Requisition is a job opening as read from the requisition store.
type Requisition struct {
	ID                 uuid.UUID             `json:"id"`
	CompanyID          uuid.UUID             `json:"company_id"`
	Title              string                `json:"title"`
	TechnicalSkills    []string              `json:"technical_skills"`
	SoftSkills         []string              `json:"soft_skills"`
	Languages          []LanguageRequirement `json:"languages"`
	ExperienceTier     ExperienceTier        `json:"experience_tier"`
	AcceptedMajors     []string              `json:"accepted_majors"` // empty = any major
	MinAcademicTerm    int                   `json:"min_academic_term"`
	Modality           string                `json:"modality"`
	MatchedCount       int                   `json:"matched_count"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// OwnedBy reports whether the requisition belongs to the given company.
func (r *Requisition) OwnedBy(companyID uuid.UUID) bool {
	return r.CompanyID == companyID
}

// Package types defines the domain types shared across the matching service.
package types

import "time"

// Language is a language on a candidate profile with its proficiency level.
// Levels follow the CEFR scale (A1 through C2) plus "Native".
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// ExperienceEntry is one prior work engagement on a candidate profile.
// The matching engine only cares about how many entries exist; the fields
// are carried for the public profile views.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"` // "YYYY-MM"
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current"`
}

// Candidate is a candidate profile as read from the profile store.
// The ID is the enrollment number, an opaque unique key; match records
// reference candidates by this key only.
type Candidate struct {
	ID                string            `json:"candidate_id"`
	Major             string            `json:"major"`
	AcademicTerm      int               `json:"academic_term"`
	TechnicalSkills   []string          `json:"technical_skills"`
	SoftSkills        []string          `json:"soft_skills"`
	Languages         []Language        `json:"languages"`
	Experience        []ExperienceEntry `json:"experience"`
	PreferredModality string            `json:"preferred_modality"`
	Visible           bool              `json:"visible"`
	ProfileComplete   bool              `json:"profile_complete"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Eligible reports whether the candidate participates in bulk matching.
// Only visible candidates with a complete profile are considered.
func (c *Candidate) Eligible() bool {
	return c.Visible && c.ProfileComplete
}

// HasExperience reports whether the candidate has any prior experience entries.
func (c *Candidate) HasExperience() bool {
	return len(c.Experience) > 0
}

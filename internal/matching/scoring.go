// Package matching implements the compatibility engine that scores candidate
// profiles against job requisitions.
package matching

import (
	"strings"

	"github.com/mreyes/campus-match/internal/types"
)

// languageLevels maps proficiency levels onto an ordered scale, lowest to
// highest. Unknown levels rank below A1, so a requirement with an unknown
// minimum level is satisfied by any candidate speaking the language.
var languageLevels = map[string]int{
	"A1":     1,
	"A2":     2,
	"B1":     3,
	"B2":     4,
	"C1":     5,
	"C2":     6,
	"NATIVE": 7,
}

// tierYears maps each experience tier to an approximate year count. The
// candidate side is approximated as half a year per experience entry, not a
// date-range computation.
var tierYears = map[types.ExperienceTier]float64{
	types.TierNone:        0,
	types.TierUnderOne:    0.5,
	types.TierOneToTwo:    1.5,
	types.TierTwoToThree:  2.5,
	types.TierThreeToFive: 4,
	types.TierOverFive:    6,
}

// yearsPerExperienceEntry is the coarse proxy for candidate experience.
const yearsPerExperienceEntry = 0.5

// Floor and partial credits of the per-dimension policies. These values are
// business-meaningful: they decide which candidates surface above a cutoff.
const (
	experienceFloorCredit    = 0.5
	careerPartialCredit      = 0.7
	careerFloorCredit        = 0.3
	termShortfallOneCredit   = 0.8
	termShortfallTwoCredit   = 0.6
	termFloorCredit          = 0.3
	modalityHybridCredit     = 0.9
	modalityMismatchCredit   = 0.5
)

// levelRank returns the ordinal rank of a proficiency level, 0 for unknown.
func levelRank(level string) int {
	return languageLevels[strings.ToUpper(strings.TrimSpace(level))]
}

// ScoreSkills compares a candidate's skill list against a required skill
// list. Matching is case-insensitive and exact; no credit for synonyms or
// substrings. An empty requirement scores 1.0, an empty candidate list
// against a nonempty requirement scores 0.0.
func ScoreSkills(candidate, required []string) float64 {
	if len(required) == 0 {
		return 1.0
	}
	if len(candidate) == 0 {
		return 0.0
	}

	candidateSet := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		candidateSet[strings.ToLower(s)] = true
	}

	matches := 0
	for _, s := range required {
		if candidateSet[strings.ToLower(s)] {
			matches++
		}
	}

	return float64(matches) / float64(len(required))
}

// ScoreLanguages counts how many required languages the candidate speaks at
// or above the minimum level, divided by the number of requirements.
func ScoreLanguages(candidate []types.Language, required []types.LanguageRequirement) float64 {
	if len(required) == 0 {
		return 1.0
	}
	if len(candidate) == 0 {
		return 0.0
	}

	matches := 0
	for _, req := range required {
		reqName := strings.ToLower(req.Name)
		reqRank := levelRank(req.MinLevel)

		for _, lang := range candidate {
			if strings.ToLower(lang.Name) == reqName && levelRank(lang.Level) >= reqRank {
				matches++
				break
			}
		}
	}

	return float64(matches) / float64(len(required))
}

// ScoreExperience compares the candidate's approximated years of experience
// against the requisition's tier. A candidate with no history at all gets a
// fixed floor credit rather than zero.
func ScoreExperience(entries int, tier types.ExperienceTier) float64 {
	requiredYears := tierYears[tier]
	if requiredYears == 0 {
		return 1.0
	}

	candidateYears := float64(entries) * yearsPerExperienceEntry

	switch {
	case candidateYears >= requiredYears:
		return 1.0
	case candidateYears > 0:
		return candidateYears / requiredYears
	default:
		return experienceFloorCredit
	}
}

// ScoreCareer compares the candidate's major against the accepted majors.
// An empty accepted list means any major qualifies. Exact match scores 1.0;
// topical overlap (any word of an accepted major appearing inside the
// candidate's major) scores partial credit; anything else gets the floor.
func ScoreCareer(candidateMajor string, accepted []string) float64 {
	if len(accepted) == 0 {
		return 1.0
	}

	majorLower := strings.ToLower(candidateMajor)
	for _, a := range accepted {
		if strings.ToLower(a) == majorLower {
			return 1.0
		}
	}

	for _, a := range accepted {
		for _, word := range strings.Fields(strings.ToLower(a)) {
			if strings.Contains(majorLower, word) {
				return careerPartialCredit
			}
		}
	}

	return careerFloorCredit
}

// ScoreAcademicTerm compares the candidate's academic term against the
// requisition's minimum, with tiered credit by shortfall.
func ScoreAcademicTerm(candidate, minimum int) float64 {
	if minimum <= 0 {
		return 1.0
	}
	if candidate >= minimum {
		return 1.0
	}

	shortfall := minimum - candidate
	switch {
	case shortfall <= 1:
		return termShortfallOneCredit
	case shortfall <= 2:
		return termShortfallTwoCredit
	default:
		return termFloorCredit
	}
}

// ScoreModality compares work modalities. Hybrid on either side is broadly
// compatible; anything else that differs gets generic partial credit.
func ScoreModality(candidate, requisition string) float64 {
	if candidate == "" || requisition == "" {
		return 1.0
	}

	candLower := strings.ToLower(candidate)
	reqLower := strings.ToLower(requisition)

	if candLower == reqLower {
		return 1.0
	}
	if strings.Contains(candLower, "hybrid") || strings.Contains(reqLower, "hybrid") {
		return modalityHybridCredit
	}

	return modalityMismatchCredit
}

// ComputeBreakdown runs all seven factor scorers for one profile pair.
func ComputeBreakdown(cand *types.Candidate, req *types.Requisition) types.Breakdown {
	return types.Breakdown{
		TechnicalSkills: ScoreSkills(cand.TechnicalSkills, req.TechnicalSkills),
		SoftSkills:      ScoreSkills(cand.SoftSkills, req.SoftSkills),
		Languages:       ScoreLanguages(cand.Languages, req.Languages),
		Experience:      ScoreExperience(len(cand.Experience), req.ExperienceTier),
		Career:          ScoreCareer(cand.Major, req.AcceptedMajors),
		AcademicTerm:    ScoreAcademicTerm(cand.AcademicTerm, req.MinAcademicTerm),
		Modality:        ScoreModality(cand.PreferredModality, req.Modality),
	}
}

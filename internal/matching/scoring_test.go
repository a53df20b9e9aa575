package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mreyes/campus-match/internal/types"
)

func TestScoreSkills_EmptyRequirement(t *testing.T) {
	assert.Equal(t, 1.0, ScoreSkills(nil, nil))
	assert.Equal(t, 1.0, ScoreSkills([]string{"Go"}, nil))
	assert.Equal(t, 1.0, ScoreSkills(nil, []string{}))
}

func TestScoreSkills_EmptyCandidate(t *testing.T) {
	assert.Equal(t, 0.0, ScoreSkills(nil, []string{"Python"}))
	assert.Equal(t, 0.0, ScoreSkills([]string{}, []string{"Python"}))
}

func TestScoreSkills_CaseInsensitiveExactMatch(t *testing.T) {
	// Requires Python and React; candidate has python and Django.
	score := ScoreSkills([]string{"python", "Django"}, []string{"Python", "React"})
	assert.Equal(t, 0.5, score)
}

func TestScoreSkills_NoSubstringCredit(t *testing.T) {
	// "Java" must not match "JavaScript".
	score := ScoreSkills([]string{"JavaScript"}, []string{"Java"})
	assert.Equal(t, 0.0, score)
}

func TestScoreSkills_AllMatched(t *testing.T) {
	score := ScoreSkills([]string{"go", "POSTGRES", "Docker"}, []string{"Go", "postgres"})
	assert.Equal(t, 1.0, score)
}

func TestScoreLanguages_EmptyRequirement(t *testing.T) {
	assert.Equal(t, 1.0, ScoreLanguages(nil, nil))
	assert.Equal(t, 1.0, ScoreLanguages([]types.Language{{Name: "English", Level: "B2"}}, nil))
}

func TestScoreLanguages_EmptyCandidate(t *testing.T) {
	required := []types.LanguageRequirement{{Name: "English", MinLevel: "A1"}}
	assert.Equal(t, 0.0, ScoreLanguages(nil, required))
}

func TestScoreLanguages_LevelBelowMinimum(t *testing.T) {
	required := []types.LanguageRequirement{{Name: "English", MinLevel: "B2"}}

	below := []types.Language{{Name: "English", Level: "B1"}}
	assert.Equal(t, 0.0, ScoreLanguages(below, required))

	above := []types.Language{{Name: "English", Level: "C1"}}
	assert.Equal(t, 1.0, ScoreLanguages(above, required))

	exact := []types.Language{{Name: "english", Level: "b2"}}
	assert.Equal(t, 1.0, ScoreLanguages(exact, required))
}

func TestScoreLanguages_NativeOutranksEverything(t *testing.T) {
	required := []types.LanguageRequirement{{Name: "Spanish", MinLevel: "C2"}}
	candidate := []types.Language{{Name: "Spanish", Level: "Native"}}
	assert.Equal(t, 1.0, ScoreLanguages(candidate, required))
}

func TestScoreLanguages_PartialSatisfaction(t *testing.T) {
	required := []types.LanguageRequirement{
		{Name: "English", MinLevel: "B2"},
		{Name: "German", MinLevel: "A2"},
	}
	candidate := []types.Language{{Name: "English", Level: "C2"}}
	assert.Equal(t, 0.5, ScoreLanguages(candidate, required))
}

func TestScoreLanguages_UnknownMinimumLevel(t *testing.T) {
	// An unrecognized minimum ranks below A1, so speaking the language at
	// any level satisfies it.
	required := []types.LanguageRequirement{{Name: "English", MinLevel: "Conversational"}}
	candidate := []types.Language{{Name: "English", Level: "A1"}}
	assert.Equal(t, 1.0, ScoreLanguages(candidate, required))
}

func TestScoreExperience_NoRequirement(t *testing.T) {
	assert.Equal(t, 1.0, ScoreExperience(0, types.TierNone))
	assert.Equal(t, 1.0, ScoreExperience(5, types.TierNone))
	// Unknown tiers map to zero required years.
	assert.Equal(t, 1.0, ScoreExperience(0, types.ExperienceTier("whatever")))
}

func TestScoreExperience_MeetsRequirement(t *testing.T) {
	// 3 entries approximate 1.5 years, enough for the 1-2 years tier.
	assert.Equal(t, 1.0, ScoreExperience(3, types.TierOneToTwo))
	assert.Equal(t, 1.0, ScoreExperience(12, types.TierOverFive))
}

func TestScoreExperience_LinearRatioBelowRequirement(t *testing.T) {
	// 1 entry = 0.5 years against 2.5 required.
	assert.InDelta(t, 0.2, ScoreExperience(1, types.TierTwoToThree), 1e-9)
	// 4 entries = 2 years against 4 required.
	assert.InDelta(t, 0.5, ScoreExperience(4, types.TierThreeToFive), 1e-9)
}

func TestScoreExperience_FloorCreditForNoHistory(t *testing.T) {
	assert.Equal(t, 0.5, ScoreExperience(0, types.TierOverFive))
	assert.Equal(t, 0.5, ScoreExperience(0, types.TierUnderOne))
}

func TestScoreCareer_EmptyAcceptedList(t *testing.T) {
	assert.Equal(t, 1.0, ScoreCareer("Philosophy", nil))
	assert.Equal(t, 1.0, ScoreCareer("", []string{}))
}

func TestScoreCareer_ExactMatch(t *testing.T) {
	score := ScoreCareer("software engineering", []string{"Software Engineering"})
	assert.Equal(t, 1.0, score)
}

func TestScoreCareer_WordOverlap(t *testing.T) {
	score := ScoreCareer("Industrial Engineering", []string{"Software Engineering"})
	assert.Equal(t, 0.7, score)
}

func TestScoreCareer_FloorCredit(t *testing.T) {
	score := ScoreCareer("Graphic Design", []string{"Computer Science"})
	assert.Equal(t, 0.3, score)
}

func TestScoreAcademicTerm_NoMinimum(t *testing.T) {
	assert.Equal(t, 1.0, ScoreAcademicTerm(1, 0))
	assert.Equal(t, 1.0, ScoreAcademicTerm(1, -1))
}

func TestScoreAcademicTerm_ShortfallTiers(t *testing.T) {
	// Minimum 7: term 8 meets it, term 6 is one short, term 5 two short,
	// term 3 far short.
	assert.Equal(t, 1.0, ScoreAcademicTerm(8, 7))
	assert.Equal(t, 1.0, ScoreAcademicTerm(7, 7))
	assert.Equal(t, 0.8, ScoreAcademicTerm(6, 7))
	assert.Equal(t, 0.6, ScoreAcademicTerm(5, 7))
	assert.Equal(t, 0.3, ScoreAcademicTerm(3, 7))
}

func TestScoreModality_EmptySides(t *testing.T) {
	assert.Equal(t, 1.0, ScoreModality("", "On-site"))
	assert.Equal(t, 1.0, ScoreModality("Remote", ""))
	assert.Equal(t, 1.0, ScoreModality("", ""))
}

func TestScoreModality_ExactAndHybrid(t *testing.T) {
	assert.Equal(t, 1.0, ScoreModality("remote", "Remote"))
	assert.Equal(t, 0.9, ScoreModality("Hybrid", "On-site"))
	assert.Equal(t, 0.9, ScoreModality("Remote", "hybrid"))
	assert.Equal(t, 0.5, ScoreModality("Remote", "On-site"))
}

func TestComputeBreakdown_AllFieldsPresent(t *testing.T) {
	cand := &types.Candidate{
		ID:                "A01234567",
		Major:             "Computer Science",
		AcademicTerm:      8,
		TechnicalSkills:   []string{"Python", "React"},
		SoftSkills:        []string{"Teamwork"},
		Languages:         []types.Language{{Name: "English", Level: "C1"}},
		Experience:        []types.ExperienceEntry{{Company: "Acme", Position: "Intern", StartDate: "2024-01"}},
		PreferredModality: "Hybrid",
	}
	req := &types.Requisition{
		TechnicalSkills: []string{"Python", "React"},
		SoftSkills:      []string{"Teamwork"},
		Languages:       []types.LanguageRequirement{{Name: "English", MinLevel: "B2"}},
		ExperienceTier:  types.TierUnderOne,
		AcceptedMajors:  []string{"Computer Science"},
		MinAcademicTerm: 7,
		Modality:        "Hybrid",
	}

	b := ComputeBreakdown(cand, req)

	assert.Equal(t, types.Breakdown{
		TechnicalSkills: 1.0,
		SoftSkills:      1.0,
		Languages:       1.0,
		Experience:      1.0,
		Career:          1.0,
		AcademicTerm:    1.0,
		Modality:        1.0,
	}, b)
	assert.True(t, b.InRange())
}

func TestComputeBreakdown_NoRequirementsIsFullCredit(t *testing.T) {
	// A requisition that requires nothing scores 1.0 on every dimension,
	// regardless of candidate data.
	b := ComputeBreakdown(&types.Candidate{}, &types.Requisition{})

	for _, f := range b.Factors() {
		assert.Equal(t, 1.0, f)
	}
}

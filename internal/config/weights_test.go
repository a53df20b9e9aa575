package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreyes/campus-match/internal/matching"
	"github.com/mreyes/campus-match/internal/schemas"
)

func writeWeightsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weights.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadWeights_EmptyPathUsesDefaults(t *testing.T) {
	w, err := LoadWeights("")
	require.NoError(t, err)
	assert.Equal(t, matching.DefaultWeights(), w)
}

func TestLoadWeights_ValidFile(t *testing.T) {
	path := writeWeightsFile(t, `{
		"technical_skills": 0.40,
		"soft_skills": 0.10,
		"languages": 0.10,
		"experience": 0.20,
		"career": 0.10,
		"academic_term": 0.05,
		"modality": 0.05
	}`)

	w, err := LoadWeights(path)
	require.NoError(t, err)
	assert.Equal(t, 0.40, w.TechnicalSkills)
	assert.Equal(t, 0.20, w.Experience)
	assert.NoError(t, w.Validate())
}

func TestLoadWeights_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing factor",
			`{"technical_skills": 0.5, "soft_skills": 0.5}`,
		},
		{
			"unknown factor",
			`{"technical_skills": 0.30, "soft_skills": 0.15, "languages": 0.15,
			  "experience": 0.15, "career": 0.15, "academic_term": 0.05,
			  "modality": 0.05, "charisma": 0.0}`,
		},
		{
			"weight above one",
			`{"technical_skills": 1.30, "soft_skills": 0.15, "languages": 0.15,
			  "experience": 0.15, "career": 0.15, "academic_term": 0.05,
			  "modality": 0.05}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeWeightsFile(t, tt.content)

			_, err := LoadWeights(path)
			require.Error(t, err)

			var ve *schemas.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestLoadWeights_SumNotOne(t *testing.T) {
	path := writeWeightsFile(t, `{
		"technical_skills": 0.30,
		"soft_skills": 0.30,
		"languages": 0.30,
		"experience": 0.30,
		"career": 0.30,
		"academic_term": 0.30,
		"modality": 0.30
	}`)

	_, err := LoadWeights(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum")
}

func TestLoadWeights_MissingFile(t *testing.T) {
	_, err := LoadWeights(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

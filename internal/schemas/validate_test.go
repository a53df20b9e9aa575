package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestResolveSchemaPath_FindsRepoSchema(t *testing.T) {
	path := ResolveSchemaPath(WeightsSchemaPath)
	require.NotEmpty(t, path, "weights schema should be resolvable from the package directory")
	assert.FileExists(t, path)
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/no_such.schema.json"))
}

func TestValidateJSON_Valid(t *testing.T) {
	schemaPath := writeTempJSON(t, "schema.json", personSchema)
	jsonPath := writeTempJSON(t, "doc.json", `{"name": "test", "age": 3}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_MissingRequiredField(t *testing.T) {
	schemaPath := writeTempJSON(t, "schema.json", personSchema)
	jsonPath := writeTempJSON(t, "doc.json", `{"age": 3}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	schemaPath := writeTempJSON(t, "schema.json", personSchema)

	err := ValidateJSON("no_such_schema.json", "no_such_doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, "no_such_doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_Valid(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "test"}`))
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(personSchema, `{"name": 7, "age": -1}`)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{ not json }`, `{"name": "test"}`)
	require.Error(t, err)

	var se *SchemaLoadError
	assert.ErrorAs(t, err, &se)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "name")
	assert.Contains(t, msg, "age")
}

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
		"age": {"type": "integer"}
	}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "Laura", "age": 29}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)
	jsonPath := writeFile(t, "doc.json", `{"age": 29}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
}

func TestValidateJSON_InvalidJSON_WrongType(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "Laura", "age": "old"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "age", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeFile(t, "doc.json", `{}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)

	err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": `)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age: must be a number")
}

func TestValidateDocument_Jobs(t *testing.T) {
	doc := `{"jobs": [{
		"id": "7a1c9a5e-35f3-4f7e-9d0a-2c4b8f1e6d21",
		"title": "Backend Developer",
		"skills_required": ["Go", "PostgreSQL"],
		"remote_ok": true,
		"experience_level": "senior",
		"salary_min": 4000000,
		"posted_at": "2025-03-01T10:00:00Z"
	}]}`

	assert.NoError(t, ValidateDocument("jobs", []byte(doc)))
}

func TestValidateDocument_JobsInvalid(t *testing.T) {
	doc := `{"jobs": [{"title": "No id", "experience_level": "guru"}]}`

	err := ValidateDocument("jobs", []byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateDocument_UserProfile(t *testing.T) {
	assert.NoError(t, ValidateDocument("user_profile", []byte(`{
		"id": "0b7e4a38-5d0e-4bb1-9f0d-0e8f9b1c2a33",
		"skills": ["Python", "Django"],
		"experience": "3 años de experiencia"
	}`)))

	assert.Error(t, ValidateDocument("user_profile", []byte(`{"id": "not-a-uuid"}`)))
}

func TestValidateDocument_Courses(t *testing.T) {
	err := ValidateDocument("courses", []byte(`{"courses": [{"id": "0b7e4a38-5d0e-4bb1-9f0d-0e8f9b1c2a33", "rating": 6}]}`))
	assert.Error(t, err)
}

func TestValidateDocument_AlertPreference(t *testing.T) {
	assert.NoError(t, ValidateDocument("alert_preference", []byte(`{"enabled": true, "frequency": "weekly", "preferred_job_types": ["contract"]}`)))
	assert.Error(t, ValidateDocument("alert_preference", []byte(`{"frequency": "hourly"}`)))
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("salaries", []byte(`{}`))
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

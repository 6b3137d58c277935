package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for _, name := range []string{Resume, JobDescription} {
		t.Run(name, func(t *testing.T) {
			content, err := Schema(name)
			require.NoError(t, err)

			var schema map[string]any
			require.NoError(t, json.Unmarshal([]byte(content), &schema))
			assert.Equal(t, "object", schema["type"])
		})
	}
}

func TestSchema_Unknown(t *testing.T) {
	_, err := Schema("nope")

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSON_Resume(t *testing.T) {
	valid := `{"personal": {"name": "Ada", "email": "ada@example.com"}, "tech_stack": ["Go"],
		"experience": [{"company": "Acme", "title": "Engineer", "date": "2020 — Present", "bullets": ["Built things"]}]}`
	assert.NoError(t, ValidateJSON(Resume, []byte(valid)))

	missingName := `{"personal": {"email": "ada@example.com"}}`
	err := ValidateJSON(Resume, []byte(missingName))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, Resume, validationErr.Schema)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "resume validation failed")

	wrongType := `{"personal": {"name": "Ada"}, "tech_stack": "Go"}`
	require.True(t, errors.As(ValidateJSON(Resume, []byte(wrongType)), &validationErr))
	assert.Equal(t, "tech_stack", validationErr.Errors[0].Field)

	unknownField := `{"personal": {"name": "Ada"}, "hobbies": []}`
	assert.Error(t, ValidateJSON(Resume, []byte(unknownField)))
}

func TestValidateDocument_JobDescription(t *testing.T) {
	assert.NoError(t, ValidateDocument(JobDescription, map[string]any{
		"title":        "Backend Engineer",
		"requirements": []any{"Go"},
	}))
	assert.NoError(t, ValidateDocument(JobDescription, map[string]any{"description": "We use Go"}))

	err := ValidateDocument(JobDescription, map[string]any{"company": "Acme"})
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))

	err = ValidateDocument(JobDescription, map[string]any{"title": "SRE", "keywords": []any{1, 2}})
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	err := ValidateJSON(Resume, []byte(`{"personal":`))

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

// Package schemas validates resume and job description documents against embedded JSON Schemas.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema names
const (
	Resume         = "resume"
	JobDescription = "job_description"
)

//go:embed json/*.schema.json
var schemaFS embed.FS

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s validation failed:\n", ve.Schema)
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Schema returns the embedded schema document for name
func Schema(name string) (string, error) {
	data, err := schemaFS.ReadFile("json/" + name + ".schema.json")
	if err != nil {
		return "", &SchemaLoadError{Path: name, Message: "unknown schema", Cause: err}
	}
	return string(data), nil
}

// ValidateJSON validates raw JSON against the named schema
func ValidateJSON(name string, data []byte) error {
	return validate(name, gojsonschema.NewBytesLoader(data))
}

// ValidateDocument validates an already decoded document, such as a map produced by a
// YAML or TOML decoder, against the named schema
func ValidateDocument(name string, doc any) error {
	return validate(name, gojsonschema.NewGoLoader(doc))
}

func validate(name string, documentLoader gojsonschema.JSONLoader) error {
	schema, err := Schema(name)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    name,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Schema: name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

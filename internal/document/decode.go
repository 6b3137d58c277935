// Package document decodes JSON, YAML and TOML documents and validates them against a schema.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/resume-cli/internal/schemas"
)

// Supported document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatFromPath returns the document format implied by a file extension, or "" when the
// extension is not a structured format
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return ""
	}
}

// DecodeError represents a document that could not be parsed or failed validation
type DecodeError struct {
	Format  string
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s document: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s document: %s", e.Format, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Decode parses data in format, validates it against the named schema, then decodes it into out.
// An empty schema name skips validation.
func Decode(data []byte, format, schema string, out any) error {
	var generic map[string]any
	if err := unmarshal(data, format, &generic); err != nil {
		return &DecodeError{Format: format, Message: "failed to parse", Cause: err}
	}

	if schema != "" {
		if err := schemas.ValidateDocument(schema, generic); err != nil {
			return &DecodeError{Format: format, Message: "invalid document", Cause: err}
		}
	}

	if err := unmarshal(data, format, out); err != nil {
		return &DecodeError{Format: format, Message: "failed to decode", Cause: err}
	}
	return nil
}

func unmarshal(data []byte, format string, out any) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		return dec.Decode(out)
	case FormatYAML:
		return yaml.Unmarshal(data, out)
	case FormatTOML:
		return toml.Unmarshal(data, out)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Encode serialises v in format
func Encode(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		return toml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

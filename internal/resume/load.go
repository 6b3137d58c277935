package resume

import (
	"os"

	"github.com/jonathan/resume-cli/internal/document"
	"github.com/jonathan/resume-cli/internal/schemas"
	"github.com/jonathan/resume-cli/internal/types"
)

// Load reads a resume from a .json, .yaml/.yml or .toml file and validates it
func Load(path string) (*types.Resume, error) {
	format := document.FormatFromPath(path)
	if format == "" {
		return nil, &LoadError{Path: path, Message: "unsupported file extension (want .json, .yaml, .yml or .toml)"}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var r types.Resume
	if err := document.Decode(content, format, schemas.Resume, &r); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode resume", Cause: err}
	}

	return &r, nil
}

// LoadOrDefault loads the resume at path, or returns Default when path is empty
func LoadOrDefault(path string) (*types.Resume, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

package resume

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-cli/internal/document"
	"github.com/jonathan/resume-cli/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValidAndFresh(t *testing.T) {
	r := Default()

	data, err := document.Encode(r, document.FormatJSON)
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateJSON(schemas.Resume, data))

	r.TechStack[0] = "COBOL"
	assert.Equal(t, "Go", Default().TechStack[0])
}

func TestLoad_AllFormats(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []string{document.FormatJSON, document.FormatYAML, document.FormatTOML} {
		t.Run(format, func(t *testing.T) {
			data, err := document.Encode(Default(), format)
			require.NoError(t, err)

			path := filepath.Join(dir, "resume."+format)
			require.NoError(t, os.WriteFile(path, data, 0644))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, Default(), loaded)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "resume.docx"))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "unsupported file extension")

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("personal:\n  role: Engineer\n"), 0644))
	_, err = Load(invalid)
	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestLoadOrDefault(t *testing.T) {
	r, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), r)
}

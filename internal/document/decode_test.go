package document

import (
	"errors"
	"testing"

	"github.com/jonathan/resume-cli/internal/schemas"
	"github.com/jonathan/resume-cli/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("a/b.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("job.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("job.yaml"))
	assert.Equal(t, FormatTOML, FormatFromPath("cfg.toml"))
	assert.Equal(t, "", FormatFromPath("posting.txt"))
}

func TestDecode_AllFormats(t *testing.T) {
	docs := map[string]string{
		FormatJSON: `{"title": "SRE", "company": "Acme", "keywords": ["go", "linux"]}`,
		FormatYAML: "title: SRE\ncompany: Acme\nkeywords:\n  - go\n  - linux\n",
		FormatTOML: "title = \"SRE\"\ncompany = \"Acme\"\nkeywords = [\"go\", \"linux\"]\n",
	}

	for format, doc := range docs {
		t.Run(format, func(t *testing.T) {
			var job types.JobDescription
			require.NoError(t, Decode([]byte(doc), format, schemas.JobDescription, &job))
			assert.Equal(t, "SRE", job.Title)
			assert.Equal(t, "Acme", job.Company)
			assert.Equal(t, []string{"go", "linux"}, job.Keywords)
		})
	}
}

func TestDecode_SchemaViolation(t *testing.T) {
	var job types.JobDescription
	err := Decode([]byte("company: Acme\n"), FormatYAML, schemas.JobDescription, &job)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	var validationErr *schemas.ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestDecode_ParseErrors(t *testing.T) {
	var job types.JobDescription
	assert.Error(t, Decode([]byte("{"), FormatJSON, "", &job))
	assert.Error(t, Decode([]byte("title = "), FormatTOML, "", &job))
	assert.Error(t, Decode([]byte("title: SRE"), "ini", "", &job))
}

func TestEncode_RoundTrip(t *testing.T) {
	job := types.JobDescription{Title: "SRE", Requirements: []string{"Linux"}}

	for _, format := range []string{FormatJSON, FormatYAML, FormatTOML} {
		data, err := Encode(job, format)
		require.NoError(t, err, format)

		var decoded types.JobDescription
		require.NoError(t, Decode(data, format, schemas.JobDescription, &decoded), format)
		assert.Equal(t, job, decoded, format)
	}
}

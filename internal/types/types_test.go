package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDescription_Validate(t *testing.T) {
	tests := []struct {
		name    string
		job     JobDescription
		wantErr bool
	}{
		{name: "title only", job: JobDescription{Title: "Backend Engineer"}},
		{name: "description only", job: JobDescription{Description: "We build things in Go"}},
		{name: "empty", job: JobDescription{}, wantErr: true},
		{name: "whitespace only", job: JobDescription{Title: "  ", Description: "\n"}, wantErr: true},
		{name: "blank keyword", job: JobDescription{Title: "SRE", Keywords: []string{"go", ""}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobDescription_Label(t *testing.T) {
	assert.Equal(t, "SRE", (&JobDescription{Title: "SRE"}).Label())
	assert.Equal(t, "SRE @ Acme", (&JobDescription{Title: "SRE", Company: "Acme"}).Label())
}

func TestJobResult_EmbedsATSResultFields(t *testing.T) {
	result := JobResult{
		JobTitle:  "Platform Engineer",
		Company:   "Acme",
		ATSResult: ATSResult{OverallScore: 72, MatchedKeywords: []string{"go"}},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"job_title":"Platform Engineer"`)
	assert.Contains(t, string(data), `"overall_score":72`)
	assert.NotContains(t, string(data), `"ATSResult"`)
}

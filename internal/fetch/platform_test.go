package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://job-boards.greenhouse.io/acme/jobs/7063751", PlatformGreenhouse},
		{"https://boards.greenhouse.io/company/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/company/job-id", PlatformLever},
		{"https://company.wd5.myworkdayjobs.com/en-US/External", PlatformWorkday},
		{"https://jobs.ashbyhq.com/acme/123", PlatformAshby},
		{"https://jobs.smartrecruiters.com/Acme/123", PlatformSmartRecruiters},
		{"https://example.com/jobs", PlatformUnknown},
		{"https://notgreenhouse.io.evil.com/jobs", PlatformUnknown},
		{"https://linkedin.com/jobs/123", PlatformUnknown},
		{"::not a url", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	greenhouse := PlatformContentSelectors(PlatformGreenhouse)
	assert.Equal(t, ".job__description.body", greenhouse[0])
	assert.Contains(t, greenhouse, ".job-description", "generic selectors follow the platform ones")

	unknown := PlatformContentSelectors(PlatformUnknown)
	assert.Equal(t, JobPostingSelectors(), unknown)
}

func TestPlatformNoiseSelectors(t *testing.T) {
	greenhouse := PlatformNoiseSelectors(PlatformGreenhouse)
	assert.Contains(t, greenhouse, "form")
	assert.Contains(t, greenhouse, ".voluntary-self-id")

	unknown := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, unknown, "#application-form")
	assert.NotContains(t, unknown, ".voluntary-self-id")
}

func TestExtractMainText_StripsGreenhouseApplication(t *testing.T) {
	html := `<html><body>
		<div class="job__description body"><p>Build Go services on AWS.</p></div>
		<div class="application--wrapper"><label>First name</label></div>
	</body></html>`

	text, err := ExtractMainText(html, PlatformContentSelectors(PlatformGreenhouse), PlatformNoiseSelectors(PlatformGreenhouse)...)
	assert.NoError(t, err)
	assert.Contains(t, text, "Build Go services")
	assert.NotContains(t, text, "First name")
}

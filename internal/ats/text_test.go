package ats

import (
	"testing"

	"github.com/jonathan/resume-cli/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResumeText_IncludesAllSectionsLowercased(t *testing.T) {
	text := ResumeText(sampleResume())

	for _, want := range []string{
		"ada byron",
		"senior software engineer",
		"distributed systems",
		"go kubernetes postgresql javascript",
		"staff engineer acme led development of a payments platform in go",
		"queuekit a durable job queue go, redis",
		"bsc computer science state university",
	} {
		assert.Contains(t, text, want)
	}
	assert.Equal(t, text, ResumeText(sampleResume()))
	assert.NotContains(t, text, "Ada")
}

func TestResumeText_NilAndEmpty(t *testing.T) {
	assert.Equal(t, "", ResumeText(nil))
	assert.NotPanics(t, func() { ResumeText(&types.Resume{}) })
}

func TestJobText(t *testing.T) {
	text := JobText(sampleJob())

	assert.Contains(t, text, "backend engineer")
	assert.Contains(t, text, "build distributed systems in go on kubernetes.")
	assert.Contains(t, text, "go kubernetes")
	assert.Contains(t, text, "terraform")
	assert.NotContains(t, text, "initech", "company is not part of the job text")
	assert.Equal(t, "", JobText(nil))
}

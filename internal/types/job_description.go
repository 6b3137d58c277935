// Package types provides type definitions for structured data used throughout the resume-cli system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobDescription is a job posting scored against the resume
type JobDescription struct {
	Title           string   `json:"title" yaml:"title" toml:"title" validate:"required_without=Description"`
	Company         string   `json:"company,omitempty" yaml:"company,omitempty" toml:"company,omitempty"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty" validate:"required_without=Title"`
	Requirements    []string `json:"requirements,omitempty" yaml:"requirements,omitempty" toml:"requirements,omitempty" validate:"dive,required"`
	PreferredSkills []string `json:"preferred_skills,omitempty" yaml:"preferred_skills,omitempty" toml:"preferred_skills,omitempty" validate:"dive,required"`
	Keywords        []string `json:"keywords,omitempty" yaml:"keywords,omitempty" toml:"keywords,omitempty" validate:"dive,required"`
}

// Validate checks that the job description has enough content to be worth scoring.
// The scoring engine itself accepts degenerate input; callers use this before invoking it.
func (j *JobDescription) Validate() error {
	trimmed := *j
	trimmed.Title = strings.TrimSpace(j.Title)
	trimmed.Description = strings.TrimSpace(j.Description)
	validate := validator.New()
	return validate.Struct(&trimmed)
}

// Label returns "Title @ Company", or just the title when the company is unknown
func (j *JobDescription) Label() string {
	if j.Company == "" {
		return j.Title
	}
	return j.Title + " @ " + j.Company
}

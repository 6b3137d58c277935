// Package ats estimates how well a resume would fare against an applicant tracking system.
//
// Every function in this package is a pure function of its arguments: the same resume,
// job description and options always produce the same result.
package ats

import (
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

// ResumeText flattens a resume into one lowercase searchable string.
// Missing sections contribute nothing.
func ResumeText(resume *types.Resume) string {
	if resume == nil {
		return ""
	}

	parts := []string{
		resume.Personal.Name,
		resume.Personal.Role,
		resume.Profile,
		strings.Join(resume.TechStack, " "),
	}
	for _, exp := range resume.Experience {
		parts = append(parts, exp.Title+" "+exp.Company+" "+strings.Join(exp.Bullets, " "))
	}
	for _, proj := range resume.Projects {
		parts = append(parts, proj.Name+" "+proj.Desc+" "+proj.Tech)
	}
	for _, edu := range resume.Education {
		parts = append(parts, edu.Degree+" "+edu.School+" "+strings.Join(edu.Details, " "))
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// JobText flattens a job description into one lowercase searchable string
func JobText(job *types.JobDescription) string {
	return strings.ToLower(jobRawText(job))
}

// jobRawText keeps the original case, which phrase detection depends on
func jobRawText(job *types.JobDescription) string {
	if job == nil {
		return ""
	}
	return strings.Join([]string{
		job.Title,
		job.Description,
		strings.Join(job.Requirements, " "),
		strings.Join(job.PreferredSkills, " "),
	}, " ")
}

// JobKeywords extracts candidate keywords from a job posting's title, description,
// requirements and preferred skills
func JobKeywords(job *types.JobDescription) []string {
	return ExtractKeywords(jobRawText(job))
}

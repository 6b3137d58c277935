// Package validation runs writing checks over a resume's prose.
package validation

import "github.com/jonathan/resume-cli/internal/types"

// Resume sections a checked text can come from
const (
	SectionProfile    = "profile"
	SectionExperience = "experience"
	SectionProjects   = "projects"
)

// checkedText is one piece of prose and where it lives in the resume
type checkedText struct {
	Section string
	Company string
	Index   int
	Text    string
}

// collectTexts returns the profile, every experience bullet and every project description
func collectTexts(resume *types.Resume) []checkedText {
	if resume == nil {
		return nil
	}

	texts := make([]checkedText, 0)
	if resume.Profile != "" {
		texts = append(texts, checkedText{Section: SectionProfile, Text: resume.Profile})
	}
	for _, exp := range resume.Experience {
		for i, bullet := range exp.Bullets {
			texts = append(texts, checkedText{Section: SectionExperience, Company: exp.Company, Index: i, Text: bullet})
		}
	}
	for i, proj := range resume.Projects {
		if proj.Desc != "" {
			texts = append(texts, checkedText{Section: SectionProjects, Company: proj.Name, Index: i, Text: proj.Desc})
		}
	}
	return texts
}

// violationAt builds a violation located at t
func violationAt(t checkedText, violationType, severity, details string) types.Violation {
	v := types.Violation{
		Type:     violationType,
		Severity: severity,
		Details:  details,
		Section:  t.Section,
	}
	if t.Section != SectionProfile {
		v.ItemIndex = intPtr(t.Index)
		v.Company = stringPtr(t.Company)
		v.BulletText = stringPtr(t.Text)
	}
	return v
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

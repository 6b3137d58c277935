// Package types provides type definitions for structured data used throughout the resume-cli system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Violation represents a single writing-check failure
type Violation struct {
	Type      string `json:"type"`
	Severity  string `json:"severity"`
	Details   string `json:"details"`
	Section   string `json:"section"`
	CharCount *int   `json:"char_count,omitempty"`

	// Location of the offending text within the resume
	Company    *string `json:"company,omitempty"`
	ItemIndex  *int    `json:"item_index,omitempty"`
	BulletText *string `json:"bullet_text,omitempty"`
}

// Violations represents a collection of writing-check failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// CountBySeverity returns the number of violations with the given severity
func (v *Violations) CountBySeverity(severity string) int {
	n := 0
	for _, violation := range v.Violations {
		if violation.Severity == severity {
			n++
		}
	}
	return n
}

// Package types provides type definitions for structured data used throughout the resume-cli system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompanyTenure is the parsed duration of one experience entry
type CompanyTenure struct {
	Company string  `json:"company"`
	Title   string  `json:"title"`
	Start   int     `json:"start_year"`
	End     int     `json:"end_year"`
	Current bool    `json:"current"`
	Years   float64 `json:"years"`
}

// ResumeStats summarises a resume
type ResumeStats struct {
	TotalYears         float64         `json:"total_years"`
	Positions          int             `json:"positions"`
	Companies          int             `json:"companies"`
	Technologies       int             `json:"technologies"`
	Projects           int             `json:"projects"`
	Bullets            int             `json:"bullets"`
	BulletsWithMetrics int             `json:"bullets_with_metrics"`
	ActionVerbRatio    float64         `json:"action_verb_ratio"`
	Tenures            []CompanyTenure `json:"tenures"`
	UnparsedDates      []string        `json:"unparsed_dates,omitempty"`
}

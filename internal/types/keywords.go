// Package types provides type definitions for structured data used throughout the resume-cli system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IndustryKeywords is the static keyword table for one industry
type IndustryKeywords struct {
	Technical      []string `json:"technical"`
	Soft           []string `json:"soft"`
	Industry       []string `json:"industry"`
	Roles          []string `json:"roles"`
	Certifications []string `json:"certifications"`
}

// CategoryCoverage records which keywords of one category the resume contains
type CategoryCoverage struct {
	Category string   `json:"category"`
	Present  []string `json:"present"`
	Missing  []string `json:"missing"`
	Score    float64  `json:"score"`
}

// KeywordAnalysis is the keyword optimizer's view of a resume for an industry
type KeywordAnalysis struct {
	Industry     string             `json:"industry"`
	OverallScore int                `json:"overall_score"`
	Categories   []CategoryCoverage `json:"categories"`
	Density      map[string]float64 `json:"density"`
	TopKeywords  []string           `json:"top_keywords"`
}

// KeywordGap lists job keywords absent from the resume, most prominent first
type KeywordGap struct {
	JobTitle    string             `json:"job_title"`
	Present     []string           `json:"present"`
	Missing     []string           `json:"missing"`
	JobDensity  map[string]float64 `json:"job_density"`
	MatchRate   float64            `json:"match_rate"`
	Suggestions []string           `json:"suggestions"`
}

// BulletSuggestion proposes a rewrite of one experience bullet
type BulletSuggestion struct {
	Company   string `json:"company"`
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason"`
}

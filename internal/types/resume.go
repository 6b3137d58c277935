// Package types provides type definitions for structured data used throughout the resume-cli system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the full resume record rendered and analyzed by the CLI
type Resume struct {
	Personal   PersonalInfo `json:"personal" yaml:"personal" toml:"personal"`
	Profile    string       `json:"profile" yaml:"profile" toml:"profile"`
	TechStack  []string     `json:"tech_stack" yaml:"tech_stack" toml:"tech_stack"`
	Experience []Experience `json:"experience" yaml:"experience" toml:"experience"`
	Projects   []Project    `json:"projects,omitempty" yaml:"projects,omitempty" toml:"projects,omitempty"`
	Education  []Education  `json:"education,omitempty" yaml:"education,omitempty" toml:"education,omitempty"`
	Leadership []string     `json:"leadership,omitempty" yaml:"leadership,omitempty" toml:"leadership,omitempty"`
	OpenSource []string     `json:"open_source,omitempty" yaml:"open_source,omitempty" toml:"open_source,omitempty"`
}

// PersonalInfo holds contact details
type PersonalInfo struct {
	Name     string      `json:"name" yaml:"name" toml:"name"`
	Role     string      `json:"role" yaml:"role" toml:"role"`
	Location string      `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Email    string      `json:"email" yaml:"email" toml:"email"`
	Phone    string      `json:"phone,omitempty" yaml:"phone,omitempty" toml:"phone,omitempty"`
	Social   SocialLinks `json:"social,omitempty" yaml:"social,omitempty" toml:"social,omitempty"`
}

// SocialLinks holds profile URLs
type SocialLinks struct {
	GitHub   string `json:"github,omitempty" yaml:"github,omitempty" toml:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty" toml:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty" yaml:"twitter,omitempty" toml:"twitter,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty" toml:"website,omitempty"`
}

// Experience is a single position. Date uses the "<start> — <end>" format, e.g. "2019 — Present".
type Experience struct {
	Company string   `json:"company" yaml:"company" toml:"company"`
	Title   string   `json:"title" yaml:"title" toml:"title"`
	Date    string   `json:"date" yaml:"date" toml:"date"`
	Bullets []string `json:"bullets" yaml:"bullets" toml:"bullets"`
}

// Project is a side or open-source project
type Project struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Desc string `json:"desc" yaml:"desc" toml:"desc"`
	Tech string `json:"tech,omitempty" yaml:"tech,omitempty" toml:"tech,omitempty"`
}

// Education is a single degree entry
type Education struct {
	Degree  string   `json:"degree" yaml:"degree" toml:"degree"`
	School  string   `json:"school" yaml:"school" toml:"school"`
	Date    string   `json:"date,omitempty" yaml:"date,omitempty" toml:"date,omitempty"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty" toml:"details,omitempty"`
}

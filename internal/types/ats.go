// Package types provides type definitions for structured data used throughout the resume-cli system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Experience levels accepted by Options.ExperienceLevel
const (
	LevelEntry     = "entry"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelExecutive = "executive"
)

// Impact and priority labels
const (
	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Options tunes a scoring call
type Options struct {
	ExperienceLevel       string `json:"experience_level,omitempty"`
	IncludeFormatAnalysis bool   `json:"include_format_analysis,omitempty"`
	StrictMode            bool   `json:"strict_mode,omitempty"`
}

// ScoreBreakdown holds the four sub-scores, each in [0,100]
type ScoreBreakdown struct {
	KeywordMatch    float64 `json:"keyword_match"`
	SkillsMatch     float64 `json:"skills_match"`
	ExperienceMatch float64 `json:"experience_match"`
	FormatScore     float64 `json:"format_score"`
}

// Recommendation is a categorized piece of advice
type Recommendation struct {
	Category   string `json:"category"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// ATSResult is the outcome of scoring one resume against one job description
type ATSResult struct {
	OverallScore    int                `json:"overall_score"`
	Breakdown       ScoreBreakdown     `json:"breakdown"`
	MatchedKeywords []string           `json:"matched_keywords"`
	MissingKeywords []string           `json:"missing_keywords"`
	KeywordDensity  map[string]float64 `json:"keyword_density,omitempty"`
	Suggestions     []string           `json:"suggestions"`
	Recommendations []Recommendation   `json:"recommendations"`
}

// JobResult is an ATSResult annotated with the job it was scored against
type JobResult struct {
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
	ATSResult
}

// ActionItem is one step in an optimization plan
type ActionItem struct {
	Action         string `json:"action"`
	Priority       string `json:"priority"`
	ExpectedImpact int    `json:"expected_impact"`
	Category       string `json:"category"`
}

// OptimizationPlan lists actions needed to reach a target score
type OptimizationPlan struct {
	CurrentScore   int          `json:"current_score"`
	TargetScore    int          `json:"target_score"`
	ProjectedScore int          `json:"projected_score"`
	GapToTarget    int          `json:"gap_to_target"`
	ActionItems    []ActionItem `json:"action_items"`
}

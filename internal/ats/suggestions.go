package ats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

// Recommendation categories
const (
	CategoryKeywords   = "keywords"
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryFormat     = "format"
)

// Thresholds below which a sub-score triggers advice on a scoring run
const (
	keywordSuggestionThreshold    = 60.0
	skillsSuggestionThreshold     = 50.0
	experienceSuggestionThreshold = 40.0
	formatSuggestionThreshold     = 70.0
)

// maxListedKeywords caps how many missing keywords a recommendation names
const maxListedKeywords = 5

// DefaultTargetScore is used when a plan is requested without a positive target
const DefaultTargetScore = 80

// planRule describes when an optimization plan includes an action
type planRule struct {
	category  string
	threshold float64
	impact    int
	priority  string
	action    string
}

// planRules are checked against the breakdown, at thresholds stricter than the suggestion ones
var planRules = []planRule{
	{CategoryKeywords, 70, 15, types.ImpactHigh, "Add missing job keywords to your profile, tech stack and experience bullets"},
	{CategorySkills, 60, 12, types.ImpactHigh, "List the required and preferred skills you have in your tech stack"},
	{CategoryExperience, 50, 10, types.ImpactMedium, "Reword experience bullets to use the job's terminology and highlight relevant work"},
	{CategoryFormat, 80, 8, types.ImpactLow, "Complete missing resume sections such as contact details, skills and education"},
}

func (r planRule) score(b types.ScoreBreakdown) float64 {
	switch r.category {
	case CategoryKeywords:
		return b.KeywordMatch
	case CategorySkills:
		return b.SkillsMatch
	case CategoryExperience:
		return b.ExperienceMatch
	default:
		return b.FormatScore
	}
}

// generateSuggestions returns one human-readable hint per sub-score below its threshold
func generateSuggestions(b types.ScoreBreakdown) []string {
	suggestions := make([]string, 0)
	if b.KeywordMatch < keywordSuggestionThreshold {
		suggestions = append(suggestions, "Include more keywords from the job description in your resume")
	}
	if b.SkillsMatch < skillsSuggestionThreshold {
		suggestions = append(suggestions, "Add more of the required technical skills to your tech stack")
	}
	if b.ExperienceMatch < experienceSuggestionThreshold {
		suggestions = append(suggestions, "Highlight experience that is more relevant to this role")
	}
	if b.FormatScore < formatSuggestionThreshold {
		suggestions = append(suggestions, "Improve resume structure by completing all standard sections")
	}
	return suggestions
}

// generateRecommendations derives categorized advice from the breakdown and missing keywords
func generateRecommendations(b types.ScoreBreakdown, missing []string) []types.Recommendation {
	recs := make([]types.Recommendation, 0)

	if b.KeywordMatch < keywordSuggestionThreshold && len(missing) > 0 {
		recs = append(recs, types.Recommendation{
			Category:   CategoryKeywords,
			Suggestion: fmt.Sprintf("Add these missing keywords: %s", strings.Join(firstN(missing, maxListedKeywords), ", ")),
			Impact:     types.ImpactHigh,
		})
	} else if len(missing) > 0 {
		recs = append(recs, types.Recommendation{
			Category:   CategoryKeywords,
			Suggestion: fmt.Sprintf("Consider adding: %s", strings.Join(firstN(missing, maxListedKeywords), ", ")),
			Impact:     types.ImpactMedium,
		})
	}

	if b.SkillsMatch < skillsSuggestionThreshold {
		recs = append(recs, types.Recommendation{
			Category:   CategorySkills,
			Suggestion: "Emphasize technical skills that match the job requirements",
			Impact:     types.ImpactHigh,
		})
	}

	if b.ExperienceMatch < experienceSuggestionThreshold {
		recs = append(recs, types.Recommendation{
			Category:   CategoryExperience,
			Suggestion: "Quantify achievements and use terminology from the job description",
			Impact:     types.ImpactMedium,
		})
	}

	if b.FormatScore < formatSuggestionThreshold {
		recs = append(recs, types.Recommendation{
			Category:   CategoryFormat,
			Suggestion: "Ensure name, email, experience, skills and education are all present",
			Impact:     types.ImpactMedium,
		})
	}

	return recs
}

// buildActionItems returns plan items for each breached rule, highest impact first
func buildActionItems(b types.ScoreBreakdown) []types.ActionItem {
	items := make([]types.ActionItem, 0, len(planRules))
	for _, rule := range planRules {
		if rule.score(b) >= rule.threshold {
			continue
		}
		items = append(items, types.ActionItem{
			Action:         rule.action,
			Priority:       rule.priority,
			ExpectedImpact: rule.impact,
			Category:       rule.category,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpectedImpact > items[j].ExpectedImpact
	})
	return items
}

func firstN(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

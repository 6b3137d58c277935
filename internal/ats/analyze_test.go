package ats

import (
	"testing"

	"github.com/jonathan/resume-cli/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateScore_Deterministic(t *testing.T) {
	opts := &types.Options{ExperienceLevel: types.LevelSenior, IncludeFormatAnalysis: true, StrictMode: true}

	first := CalculateScore(sampleResume(), sampleJob(), opts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CalculateScore(sampleResume(), sampleJob(), opts))
	}
}

func TestCalculateScore_DoesNotMutateInputs(t *testing.T) {
	resume, job := sampleResume(), sampleJob()

	CalculateScore(resume, job, &types.Options{IncludeFormatAnalysis: true})

	assert.Equal(t, sampleResume(), resume)
	assert.Equal(t, sampleJob(), job)
}

func TestCalculateScore_Breakdown(t *testing.T) {
	resume, job := sampleResume(), sampleJob()

	result := CalculateScore(resume, job, nil)

	targets := TargetKeywords(job.Keywords, CommonATSKeywords)
	expectedKeyword := MatchKeywords(ResumeText(resume), targets).Score
	assert.InDelta(t, expectedKeyword, result.Breakdown.KeywordMatch, 0.0001)
	// Go and Kubernetes of Go, Kubernetes, Terraform
	assert.InDelta(t, 2.0/3.0*100, result.Breakdown.SkillsMatch, 0.0001)
	assert.Equal(t, 70.0, result.Breakdown.ExperienceMatch)
	assert.Equal(t, 85.0, result.Breakdown.FormatScore)
	assert.Equal(t, Aggregate(result.Breakdown, false), result.OverallScore)

	assert.Contains(t, result.MatchedKeywords, "payments")
	assert.Contains(t, result.MissingKeywords, "terraform")
	assert.ElementsMatch(t, targets, append(append([]string{}, result.MatchedKeywords...), result.MissingKeywords...))

	require.Contains(t, result.KeywordDensity, "kubernetes")
	assert.Greater(t, result.KeywordDensity["kubernetes"], 0.0)
	assert.NotContains(t, result.KeywordDensity, "terraform")
}

func TestCalculateScore_EmptyInputs(t *testing.T) {
	result := CalculateScore(&types.Resume{}, &types.JobDescription{}, &types.Options{IncludeFormatAnalysis: true})

	assert.Equal(t, 0.0, result.Breakdown.KeywordMatch)
	assert.Equal(t, 0.0, result.Breakdown.SkillsMatch)
	assert.Equal(t, 30.0, result.Breakdown.ExperienceMatch)
	assert.Equal(t, 35.0, result.Breakdown.FormatScore)
	assert.Len(t, result.Suggestions, 4)
	assert.Equal(t, CommonATSKeywords, result.MissingKeywords)

	assert.NotPanics(t, func() { CalculateScore(nil, nil, nil) })
}

func TestCalculateScore_Recommendations(t *testing.T) {
	result := CalculateScore(&types.Resume{}, &types.JobDescription{Keywords: []string{"rust"}}, nil)

	require.NotEmpty(t, result.Recommendations)
	first := result.Recommendations[0]
	assert.Equal(t, CategoryKeywords, first.Category)
	assert.Equal(t, types.ImpactHigh, first.Impact)
	assert.Equal(t, "Add these missing keywords: rust, experience, team, project, development", first.Suggestion)

	categories := make([]string, 0)
	for _, r := range result.Recommendations {
		categories = append(categories, r.Category)
	}
	assert.Equal(t, []string{CategoryKeywords, CategorySkills, CategoryExperience}, categories)
}

func TestGenerateRecommendations_MediumKeywordImpactAboveThreshold(t *testing.T) {
	b := types.ScoreBreakdown{KeywordMatch: 75, SkillsMatch: 90, ExperienceMatch: 70, FormatScore: 85}

	recs := generateRecommendations(b, []string{"terraform"})

	require.Len(t, recs, 1)
	assert.Equal(t, types.ImpactMedium, recs[0].Impact)
	assert.Equal(t, "Consider adding: terraform", recs[0].Suggestion)
	assert.Empty(t, generateRecommendations(b, nil))
	assert.Empty(t, generateSuggestions(b))
}

func TestAnalyzeMultipleJobs_SortedAndAnnotated(t *testing.T) {
	jobs := []types.JobDescription{
		{Title: "Data Scientist", Company: "Hooli", Requirements: []string{"Python", "Spark"}, Keywords: []string{"pandas"}},
		*sampleJob(),
		{Title: "Empty"},
	}

	results := AnalyzeMultipleJobs(sampleResume(), jobs, &types.Options{IncludeFormatAnalysis: true})

	require.Len(t, results, len(jobs))
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].OverallScore, results[i].OverallScore)
	}
	assert.Equal(t, "Backend Engineer", results[0].JobTitle)
	assert.Equal(t, "Initech", results[0].Company)
}

func TestAnalyzeMultipleJobs_TiesKeepInputOrder(t *testing.T) {
	jobs := []types.JobDescription{{Title: "A"}, {Title: "B"}, {Title: "C"}}

	results := AnalyzeMultipleJobs(&types.Resume{}, jobs, nil)

	assert.Equal(t, "A", results[0].JobTitle)
	assert.Equal(t, "B", results[1].JobTitle)
	assert.Equal(t, "C", results[2].JobTitle)
	assert.Empty(t, AnalyzeMultipleJobs(sampleResume(), nil, nil))
}

func TestGenerateOptimizationPlan_SortedAndDefaultTarget(t *testing.T) {
	plan := GenerateOptimizationPlan(&types.Resume{}, &types.JobDescription{Keywords: []string{"go"}}, 0)

	assert.Equal(t, DefaultTargetScore, plan.TargetScore)
	require.NotEmpty(t, plan.ActionItems)
	for i := 1; i < len(plan.ActionItems); i++ {
		assert.GreaterOrEqual(t, plan.ActionItems[i-1].ExpectedImpact, plan.ActionItems[i].ExpectedImpact)
	}
	assert.Equal(t, plan.TargetScore-plan.CurrentScore, plan.GapToTarget)
	assert.LessOrEqual(t, plan.ProjectedScore, 100)
}

func TestBuildActionItems_OnlyBreachedThresholds(t *testing.T) {
	items := buildActionItems(types.ScoreBreakdown{KeywordMatch: 75, SkillsMatch: 55, ExperienceMatch: 45, FormatScore: 90})

	require.Len(t, items, 2)
	assert.Equal(t, CategorySkills, items[0].Category)
	assert.Equal(t, 12, items[0].ExpectedImpact)
	assert.Equal(t, types.ImpactHigh, items[0].Priority)
	assert.Equal(t, CategoryExperience, items[1].Category)
	assert.Equal(t, 10, items[1].ExpectedImpact)

	all := buildActionItems(types.ScoreBreakdown{})
	impacts := make([]int, 0, len(all))
	for _, item := range all {
		impacts = append(impacts, item.ExpectedImpact)
	}
	assert.Equal(t, []int{15, 12, 10, 8}, impacts)

	assert.Empty(t, buildActionItems(types.ScoreBreakdown{KeywordMatch: 70, SkillsMatch: 60, ExperienceMatch: 50, FormatScore: 80}))
}

func TestGenerateOptimizationPlan_AlreadyAboveTarget(t *testing.T) {
	plan := GenerateOptimizationPlan(sampleResume(), sampleJob(), 10)

	assert.Equal(t, 10, plan.TargetScore)
	assert.Equal(t, 0, plan.GapToTarget)
}

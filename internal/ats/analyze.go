package ats

import (
	"sort"

	"github.com/jonathan/resume-cli/internal/types"
)

// CalculateScore scores a resume against one job description.
// A nil opts is treated as the zero Options value.
func CalculateScore(resume *types.Resume, job *types.JobDescription, opts *types.Options) *types.ATSResult {
	if opts == nil {
		opts = &types.Options{}
	}

	resumeText := ResumeText(resume)

	var jobKeywords []string
	if job != nil {
		jobKeywords = job.Keywords
	}
	match := MatchKeywords(resumeText, TargetKeywords(jobKeywords, CommonATSKeywords))

	breakdown := types.ScoreBreakdown{
		KeywordMatch:    clampScore(match.Score),
		SkillsMatch:     clampScore(computeSkillsScore(resume, job)),
		ExperienceMatch: clampScore(computeExperienceScore(resume, job, opts.ExperienceLevel)),
		FormatScore:     clampScore(computeFormatScore(resume, opts.IncludeFormatAnalysis)),
	}

	return &types.ATSResult{
		OverallScore:    Aggregate(breakdown, opts.StrictMode),
		Breakdown:       breakdown,
		MatchedKeywords: match.Matched,
		MissingKeywords: match.Missing,
		KeywordDensity:  CalculateDensity(resumeText, match.Matched),
		Suggestions:     generateSuggestions(breakdown),
		Recommendations: generateRecommendations(breakdown, match.Missing),
	}
}

// AnalyzeMultipleJobs scores the resume against each job independently and returns the
// results sorted by overall score, highest first. Ties keep input order.
func AnalyzeMultipleJobs(resume *types.Resume, jobs []types.JobDescription, opts *types.Options) []types.JobResult {
	results := make([]types.JobResult, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		results = append(results, types.JobResult{
			JobTitle:  job.Title,
			Company:   job.Company,
			ATSResult: *CalculateScore(resume, job, opts),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})
	return results
}

// GenerateOptimizationPlan lists the actions that would raise the resume's score for job.
// A targetScore of zero or less means DefaultTargetScore.
func GenerateOptimizationPlan(resume *types.Resume, job *types.JobDescription, targetScore int) *types.OptimizationPlan {
	if targetScore <= 0 {
		targetScore = DefaultTargetScore
	}

	result := CalculateScore(resume, job, nil)
	items := buildActionItems(result.Breakdown)

	projected := result.OverallScore
	for _, item := range items {
		projected += item.ExpectedImpact
	}
	if projected > 100 {
		projected = 100
	}

	gap := targetScore - result.OverallScore
	if gap < 0 {
		gap = 0
	}

	return &types.OptimizationPlan{
		CurrentScore:   result.OverallScore,
		TargetScore:    targetScore,
		ProjectedScore: projected,
		GapToTarget:    gap,
		ActionItems:    items,
	}
}

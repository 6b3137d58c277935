package optimizer

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-cli/internal/ats"
	"github.com/jonathan/resume-cli/internal/types"
)

// Category names used in KeywordAnalysis
const (
	CategoryTechnical      = "technical"
	CategorySoft           = "soft"
	CategoryIndustry       = "industry"
	CategoryRoles          = "roles"
	CategoryCertifications = "certifications"
)

// Category weights for the overall keyword score
const (
	technicalWeight      = 0.4
	softWeight           = 0.2
	industryWeight       = 0.2
	rolesWeight          = 0.1
	certificationsWeight = 0.1
)

const (
	topKeywordCount   = 10
	maxGapSuggestions = 5
)

// AnalyzeKeywords reports which of an industry's keywords the resume contains.
// Keywords are matched as whole words, ignoring case.
func AnalyzeKeywords(resume *types.Resume, industry string) (*types.KeywordAnalysis, error) {
	if industry == "" {
		industry = DefaultIndustry
	}
	table, ok := Industries[strings.ToLower(industry)]
	if !ok {
		return nil, &UnknownIndustryError{Industry: industry}
	}

	text := ats.ResumeText(resume)

	categories := []struct {
		name     string
		keywords []string
		weight   float64
	}{
		{CategoryTechnical, table.Technical, technicalWeight},
		{CategorySoft, table.Soft, softWeight},
		{CategoryIndustry, table.Industry, industryWeight},
		{CategoryRoles, table.Roles, rolesWeight},
		{CategoryCertifications, table.Certifications, certificationsWeight},
	}

	analysis := &types.KeywordAnalysis{
		Industry:   strings.ToLower(industry),
		Categories: make([]types.CategoryCoverage, 0, len(categories)),
		Density:    make(map[string]float64),
	}

	overall := 0.0
	for _, c := range categories {
		coverage := coverCategory(text, c.name, c.keywords)
		for _, keyword := range coverage.Present {
			analysis.Density[keyword] = ats.CalculateDensity(text, []string{keyword})[keyword]
		}
		overall += coverage.Score * c.weight
		analysis.Categories = append(analysis.Categories, coverage)
	}

	analysis.OverallScore = int(math.Round(overall))
	analysis.TopKeywords = topKeywords(text, topKeywordCount)
	return analysis, nil
}

// coverCategory splits keywords into present and missing
func coverCategory(text, name string, keywords []string) types.CategoryCoverage {
	coverage := types.CategoryCoverage{
		Category: name,
		Present:  make([]string, 0),
		Missing:  make([]string, 0),
	}

	density := ats.CalculateDensity(text, keywords)
	for _, keyword := range keywords {
		if density[keyword] > 0 {
			coverage.Present = append(coverage.Present, keyword)
		} else {
			coverage.Missing = append(coverage.Missing, keyword)
		}
	}

	if len(keywords) > 0 {
		coverage.Score = float64(len(coverage.Present)) / float64(len(keywords)) * 100
	}
	return coverage
}

// topKeywords returns the n densest keywords extracted from text
func topKeywords(text string, n int) []string {
	keywords := ats.ExtractKeywords(text)
	density := ats.CalculateDensity(text, keywords)

	sort.SliceStable(keywords, func(i, j int) bool {
		return density[keywords[i]] > density[keywords[j]]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

// OptimizeForJob lists the job's keywords the resume lacks, most prominent in the posting first
func OptimizeForJob(resume *types.Resume, job *types.JobDescription) *types.KeywordGap {
	resumeText := ats.ResumeText(resume)
	jobText := ats.JobText(job)

	var explicit []string
	if job != nil {
		explicit = job.Keywords
	}
	candidates := ats.TargetKeywords(explicit, ats.JobKeywords(job))
	match := ats.MatchKeywords(resumeText, candidates)

	jobDensity := ats.CalculateDensity(jobText, candidates)
	missing := append([]string{}, match.Missing...)
	sort.SliceStable(missing, func(i, j int) bool {
		return jobDensity[missing[i]] > jobDensity[missing[j]]
	})

	gap := &types.KeywordGap{
		Present:     match.Matched,
		Missing:     missing,
		JobDensity:  jobDensity,
		MatchRate:   match.Score,
		Suggestions: make([]string, 0),
	}
	if job != nil {
		gap.JobTitle = job.Title
	}

	for _, keyword := range missing[:min(len(missing), maxGapSuggestions)] {
		gap.Suggestions = append(gap.Suggestions,
			"Mention \""+keyword+"\" in your experience or tech stack ("+formatPercent(jobDensity[keyword])+" of the job posting)")
	}
	return gap
}

func formatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64) + "%"
}

package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-cli/internal/types"
)

func TestPrintJobDescription(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.JobDescription{
		Title:           "Senior Engineer",
		Company:         "Acme Corp",
		Requirements:    []string{"Go", "Kubernetes", "PostgreSQL", "AWS", "Terraform", "gRPC", "Redis"},
		PreferredSkills: []string{"Rust"},
		Keywords:        []string{"distributed", "payments"},
	}

	p.PrintJobDescription(job)
	output := buf.String()

	assert.Contains(t, output, "PARSED JOB DESCRIPTION")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "• Go")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "Rust")
	assert.Contains(t, output, "distributed, payments")
}

func TestPrinters_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDescription(nil)
	p.PrintATSResult(nil)
	p.PrintOptimizationPlan(nil)
	p.PrintKeywordAnalysis(nil)
	p.PrintKeywordGap(nil)
	p.PrintBulletSuggestions(nil)
	p.PrintStats(nil)

	assert.Empty(t, buf.String())
}

func TestPrintATSResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSResult(&types.ATSResult{
		OverallScore:    72,
		Breakdown:       types.ScoreBreakdown{KeywordMatch: 50, SkillsMatch: 100, ExperienceMatch: 70, FormatScore: 80},
		MatchedKeywords: []string{"go", "aws"},
		MissingKeywords: []string{"rust", "kafka"},
		Recommendations: []types.Recommendation{
			{Category: "keywords", Suggestion: "Add rust", Impact: types.ImpactHigh},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS COMPATIBILITY SCORE")
	assert.Contains(t, output, " 72/100")
	assert.Contains(t, output, "Matched 2 of 4 keywords")
	assert.Contains(t, output, "• kafka")
	assert.Contains(t, output, "[HIGH] Add rust")
	assert.Contains(t, output, strings.Repeat("█", barWidth))
}

func TestPrintOptimizationPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOptimizationPlan(&types.OptimizationPlan{
		CurrentScore:   55,
		TargetScore:    80,
		ProjectedScore: 70,
		GapToTarget:    10,
		ActionItems: []types.ActionItem{
			{Action: "Add missing keywords", Priority: types.ImpactHigh, ExpectedImpact: 15, Category: "keywords"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "OPTIMIZATION PLAN")
	assert.Contains(t, output, "1. [HIGH] +15  keywords")
	assert.Contains(t, output, "Still 10 points short")

	buf.Reset()
	p.PrintOptimizationPlan(&types.OptimizationPlan{CurrentScore: 90, TargetScore: 80, ProjectedScore: 90})
	assert.Contains(t, buf.String(), "Nothing to do")
}

func TestPrintKeywordAnalysisAndGap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintKeywordAnalysis(&types.KeywordAnalysis{
		Industry:     "technology",
		OverallScore: 64,
		Categories: []types.CategoryCoverage{
			{Category: "technical", Present: []string{"go"}, Missing: []string{"java"}, Score: 50},
		},
		TopKeywords: []string{"go"},
	})
	p.PrintKeywordGap(&types.KeywordGap{
		JobTitle:  "SRE",
		Missing:   []string{"prometheus"},
		MatchRate: 75,
	})
	output := buf.String()

	assert.Contains(t, output, "KEYWORD ANALYSIS")
	assert.Contains(t, output, "technical        1/2")
	assert.Contains(t, output, "Top keywords: go")
	assert.Contains(t, output, "JOB KEYWORD GAP")
	assert.Contains(t, output, "Match rate:  75%")
	assert.Contains(t, output, "• prometheus")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStats(&types.ResumeStats{
		TotalYears:         6.5,
		Positions:          3,
		Companies:          2,
		Bullets:            10,
		BulletsWithMetrics: 4,
		ActionVerbRatio:    0.8,
		UnparsedDates:      []string{"sometime"},
	})
	output := buf.String()

	assert.Contains(t, output, "6.5 years")
	assert.Contains(t, output, "3 at 2 companies")
	assert.Contains(t, output, "10 (4 with metrics)")
	assert.Contains(t, output, "80%")
	assert.Contains(t, output, "Unparsed dates: sometime")
}

func TestPrintViolations_WithViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	violations := &types.Violations{
		Violations: []types.Violation{
			{Type: "long_bullet", Severity: "error", Details: "Bullet exceeds maximum length"},
			{Type: "weak_phrase", Severity: "warning", Details: "responsible for"},
			{Type: "weak_phrase", Severity: "warning", Details: "helped with"},
		},
	}

	p.PrintViolations(violations)
	output := buf.String()

	assert.Contains(t, output, "WRITING CHECK VIOLATIONS")
	assert.Contains(t, output, "3 violations (1 errors, 2 warnings)")
	assert.Contains(t, output, "weak_phrase (2)")
	assert.Contains(t, output, "Bullet exceeds maximum length")
	assert.Less(t, strings.Index(output, "long_bullet"), strings.Index(output, "weak_phrase"), "groups are sorted by type")
}

func TestPrintViolations_NoViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(&types.Violations{})

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobDescription(&types.JobDescription{
		Company: "A Very Long Company Name That Should Be Truncated To Fit Inside",
		Title:   "Senior Staff Principal Distinguished Engineer Level 99 — Platform",
	})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestWriteBatchTable(t *testing.T) {
	var buf bytes.Buffer

	err := WriteBatchTable(&buf, []types.JobResult{
		{JobTitle: "Backend Engineer", Company: "Initech", ATSResult: types.ATSResult{OverallScore: 81, MissingKeywords: []string{"rust"}}},
		{JobTitle: "Mainframe Developer", ATSResult: types.ATSResult{OverallScore: 22}},
	})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Initech")
	assert.Contains(t, output, "81")
	assert.Less(t, strings.Index(output, "Backend Engineer"), strings.Index(output, "Mainframe Developer"))
}

func TestWriteBatchTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBatchTable(&buf, nil))
	assert.Equal(t, "No jobs scored.\n", buf.String())
}

func TestWriteTenureTable(t *testing.T) {
	var buf bytes.Buffer

	err := WriteTenureTable(&buf, &types.ResumeStats{Tenures: []types.CompanyTenure{
		{Company: "Northwind", Title: "Engineer", Start: 2019, End: 2023, Years: 4},
		{Company: "Contoso", Title: "Lead", Start: 2023, End: 2025, Current: true, Years: 2},
	}})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Northwind")
	assert.Contains(t, output, "Present")
	assert.Contains(t, output, "4.0")
}

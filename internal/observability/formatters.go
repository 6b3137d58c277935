// Package observability provides formatted output utilities for human-readable CLI output.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-cli/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of a 0-100 score bar
	barWidth = 20
)

// Printer handles formatted output for summaries
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// pad right-pads s with spaces to n runes; %-*s counts bytes and skews the box
func pad(s string, n int) string {
	if count := utf8.RuneCountInString(s); count < n {
		return s + strings.Repeat(" ", n-count)
	}
	return s
}

func scoreBar(score float64) string {
	filled := int(score/100*barWidth + 0.5)
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintJobDescription outputs a human-readable summary of a loaded job description.
func (p *Printer) PrintJobDescription(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.Title))
	sb.WriteString("\n")

	writeList(&sb, "Requirements:", job.Requirements, maxItemsToShow)
	writeList(&sb, "Preferred:", job.PreferredSkills, 3)
	if len(job.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(job.Keywords, ", ")))
	}

	p.printBox("PARSED JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSResult outputs the overall score, breakdown bars and top recommendations.
func (p *Printer) PrintATSResult(result *types.ATSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:     %3d/100  %s\n\n", result.OverallScore, scoreBar(float64(result.OverallScore))))
	sb.WriteString(fmt.Sprintf("Keywords:    %3.0f      %s\n", result.Breakdown.KeywordMatch, scoreBar(result.Breakdown.KeywordMatch)))
	sb.WriteString(fmt.Sprintf("Skills:      %3.0f      %s\n", result.Breakdown.SkillsMatch, scoreBar(result.Breakdown.SkillsMatch)))
	sb.WriteString(fmt.Sprintf("Experience:  %3.0f      %s\n", result.Breakdown.ExperienceMatch, scoreBar(result.Breakdown.ExperienceMatch)))
	sb.WriteString(fmt.Sprintf("Format:      %3.0f      %s\n\n", result.Breakdown.FormatScore, scoreBar(result.Breakdown.FormatScore)))

	sb.WriteString(fmt.Sprintf("Matched %d of %d keywords\n",
		len(result.MatchedKeywords), len(result.MatchedKeywords)+len(result.MissingKeywords)))
	writeList(&sb, "Missing:", result.MissingKeywords, maxItemsToShow)

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", strings.ToUpper(rec.Impact), rec.Suggestion))
		}
	}

	p.printBox("ATS COMPATIBILITY SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimizationPlan outputs the prioritised action items of a plan.
func (p *Printer) PrintOptimizationPlan(plan *types.OptimizationPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Current:    %d\n", plan.CurrentScore))
	sb.WriteString(fmt.Sprintf("Target:     %d\n", plan.TargetScore))
	sb.WriteString(fmt.Sprintf("Projected:  %d\n\n", plan.ProjectedScore))

	if len(plan.ActionItems) == 0 {
		sb.WriteString("✅ Nothing to do: every category is above its threshold")
	}
	for i, item := range plan.ActionItems {
		sb.WriteString(fmt.Sprintf("%d. [%s] +%d  %s\n", i+1, strings.ToUpper(item.Priority), item.ExpectedImpact, item.Category))
		sb.WriteString(fmt.Sprintf("   %s\n", item.Action))
	}
	if plan.GapToTarget > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠ Still %d points short of target after all actions", plan.GapToTarget))
	}

	p.printBox("OPTIMIZATION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordAnalysis outputs per-category coverage for an industry.
func (p *Printer) PrintKeywordAnalysis(analysis *types.KeywordAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", analysis.Industry))
	sb.WriteString(fmt.Sprintf("Score:     %d/100\n\n", analysis.OverallScore))

	for _, c := range analysis.Categories {
		total := len(c.Present) + len(c.Missing)
		sb.WriteString(fmt.Sprintf("%-15s %2d/%-2d %s\n", c.Category, len(c.Present), total, scoreBar(c.Score)))
	}

	if len(analysis.TopKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("\nTop keywords: %s", strings.Join(analysis.TopKeywords, ", ")))
	}

	p.printBox("KEYWORD ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywordGap outputs the job keywords the resume is missing.
func (p *Printer) PrintKeywordGap(gap *types.KeywordGap) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:         %s\n", gap.JobTitle))
	sb.WriteString(fmt.Sprintf("Match rate:  %.0f%%\n\n", gap.MatchRate))
	writeList(&sb, "Missing (most prominent first):", gap.Missing, maxItemsToShow)
	writeList(&sb, "Suggestions:", gap.Suggestions, 3)

	p.printBox("JOB KEYWORD GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulletSuggestions outputs proposed bullet rewrites.
func (p *Printer) PrintBulletSuggestions(suggestions []types.BulletSuggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("%s\n", s.Company))
		sb.WriteString(fmt.Sprintf("  - %s\n", s.Original))
		sb.WriteString(fmt.Sprintf("  + %s\n", s.Suggested))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(suggestions)-maxItemsToShow))
	}

	p.printBox("BULLET SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs resume statistics.
func (p *Printer) PrintStats(stats *types.ResumeStats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience:    %.1f years\n", stats.TotalYears))
	sb.WriteString(fmt.Sprintf("Positions:     %d at %d companies\n", stats.Positions, stats.Companies))
	sb.WriteString(fmt.Sprintf("Technologies:  %d\n", stats.Technologies))
	sb.WriteString(fmt.Sprintf("Projects:      %d\n", stats.Projects))
	sb.WriteString(fmt.Sprintf("Bullets:       %d (%d with metrics)\n", stats.Bullets, stats.BulletsWithMetrics))
	sb.WriteString(fmt.Sprintf("Action verbs:  %.0f%%", stats.ActionVerbRatio*100))
	if len(stats.UnparsedDates) > 0 {
		sb.WriteString(fmt.Sprintf("\n\n⚠ Unparsed dates: %s", strings.Join(stats.UnparsedDates, "; ")))
	}

	p.printBox("RESUME STATISTICS", sb.String())
}

// PrintViolations outputs writing-check violations grouped by type.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %s │\n", pad("✅ NO VIOLATIONS FOUND", boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations (%d errors, %d warnings):\n\n",
		len(violations.Violations), violations.CountBySeverity("error"), violations.CountBySeverity("warning")))

	byType := make(map[string][]types.Violation)
	for _, v := range violations.Violations {
		byType[v.Type] = append(byType[v.Type], v)
	}
	typeNames := make([]string, 0, len(byType))
	for name := range byType {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)

	for i, name := range typeNames {
		group := byType[name]
		sb.WriteString(fmt.Sprintf("⚠ %s (%d)\n", name, len(group)))
		count := min(len(group), 3)
		for j := 0; j < count; j++ {
			sb.WriteString(fmt.Sprintf("  %s\n", group[j].Details))
		}
		if len(group) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group)-3))
		}
		if i < len(typeNames)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WRITING CHECK VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

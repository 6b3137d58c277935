package observability

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/jonathan/resume-cli/internal/types"
)

// maxTitleWidth bounds the job column of the batch table
const maxTitleWidth = 40

// WriteBatchTable renders batch results as a table, one row per job, in the given order.
func WriteBatchTable(w io.Writer, results []types.JobResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No jobs scored.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("#", "Job", "Company", "Score", "Keywords", "Skills", "Experience", "Format", "Missing")

	for i, r := range results {
		row := []string{
			strconv.Itoa(i + 1),
			truncate(r.JobTitle, maxTitleWidth),
			r.Company,
			strconv.Itoa(r.OverallScore),
			formatScore(r.Breakdown.KeywordMatch),
			formatScore(r.Breakdown.SkillsMatch),
			formatScore(r.Breakdown.ExperienceMatch),
			formatScore(r.Breakdown.FormatScore),
			strconv.Itoa(len(r.MissingKeywords)),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// WriteTenureTable renders the per-company tenure breakdown of resume statistics.
func WriteTenureTable(w io.Writer, stats *types.ResumeStats) error {
	if stats == nil || len(stats.Tenures) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Company", "Title", "From", "To", "Years")

	for _, t := range stats.Tenures {
		to := strconv.Itoa(t.End)
		if t.Current {
			to = "Present"
		}
		row := []string{t.Company, t.Title, strconv.Itoa(t.Start), to, fmt.Sprintf("%.1f", t.Years)}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.0f", score)
}

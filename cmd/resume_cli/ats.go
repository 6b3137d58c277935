package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/ats"
	"github.com/jonathan/resume-cli/internal/observability"
	"github.com/jonathan/resume-cli/internal/pipeline"
	"github.com/jonathan/resume-cli/internal/types"
)

var atsCmd = &cobra.Command{
	Use:   "ats",
	Short: "Score the resume the way an applicant tracking system would",
}

var atsScoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the resume against one job description",
	Long: `Score the resume against a job description loaded from a file, a URL or inline text.

The report is written as json, text or html to stdout, or to --out.`,
	RunE: runATSScore,
}

var atsBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score the resume against several job descriptions",
	Long: `Load every job description concurrently and print a table of results, best match first.
URL fetches share one rate-limited client.`,
	RunE: runATSBatch,
}

var atsPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build an optimization plan for one job description",
	RunE:  runATSPlan,
}

var (
	scoreJob            jobFlags
	scoreLevel          string
	scoreStrict         bool
	scoreFormatAnalysis bool
	scoreReport         string
	scoreOut            string

	batchJobs            []string
	batchURLs            []string
	batchConcurrency     int
	batchContinueOnError bool
	batchFormat          string

	planJob    jobFlags
	planTarget int
)

func init() {
	scoreJob.register(atsScoreCmd)
	atsScoreCmd.Flags().StringVar(&scoreLevel, "level", "", "Expected experience level (entry|mid|senior|executive)")
	atsScoreCmd.Flags().BoolVar(&scoreStrict, "strict", false, "Use strict weighting (keywords and skills count more)")
	atsScoreCmd.Flags().BoolVar(&scoreFormatAnalysis, "format-analysis", false, "Score resume structure instead of using the fixed format score")
	atsScoreCmd.Flags().StringVar(&scoreReport, "report", "", "Report format ("+strings.Join(ats.ExportFormats, "|")+")")
	atsScoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Write the report to a file")

	atsBatchCmd.Flags().StringSliceVarP(&batchJobs, "job", "j", nil, "Job description file (repeatable)")
	atsBatchCmd.Flags().StringSliceVar(&batchURLs, "job-url", nil, "Job posting URL (repeatable)")
	atsBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum number of jobs loaded in parallel")
	atsBatchCmd.Flags().BoolVar(&batchContinueOnError, "continue-on-error", false, "Skip job sources that fail to load")
	atsBatchCmd.Flags().StringVar(&batchFormat, "format", "table", "Output format (table|json)")
	atsBatchCmd.Flags().StringVar(&scoreLevel, "level", "", "Expected experience level (entry|mid|senior|executive)")
	atsBatchCmd.Flags().BoolVar(&scoreStrict, "strict", false, "Use strict weighting (keywords and skills count more)")
	atsBatchCmd.MarkFlagsOneRequired("job", "job-url")

	planJob.register(atsPlanCmd)
	atsPlanCmd.Flags().IntVar(&planTarget, "target", 0, "Target overall score (default from config, 80)")

	atsCmd.AddCommand(atsScoreCmd, atsBatchCmd, atsPlanCmd)
	rootCmd.AddCommand(atsCmd)
}

// scoringOptions applies score flags on top of the config file values
func scoringOptions(cmd *cobra.Command) (*types.Options, error) {
	opts := &types.Options{
		ExperienceLevel:       settings.ExperienceLevel,
		StrictMode:            settings.StrictMode,
		IncludeFormatAnalysis: settings.IncludeFormatAnalysis,
	}
	if cmd.Flags().Changed("level") {
		switch scoreLevel {
		case types.LevelEntry, types.LevelMid, types.LevelSenior, types.LevelExecutive:
			opts.ExperienceLevel = scoreLevel
		default:
			return nil, fmt.Errorf("unknown experience level %q", scoreLevel)
		}
	}
	if cmd.Flags().Changed("strict") {
		opts.StrictMode = scoreStrict
	}
	if cmd.Flags().Changed("format-analysis") {
		opts.IncludeFormatAnalysis = scoreFormatAnalysis
	}
	return opts, nil
}

func runATSScore(cmd *cobra.Command, _ []string) error {
	r, err := loadResume()
	if err != nil {
		return err
	}
	scoring, err := scoringOptions(cmd)
	if err != nil {
		return err
	}
	job, err := scoreJob.load(cmd)
	if err != nil {
		return err
	}

	result := ats.CalculateScore(r, job, scoring)
	if settings.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintATSResult(result)
	}

	format := settings.ReportFormat
	if cmd.Flags().Changed("report") {
		format = scoreReport
	}
	report, err := ats.ExportAnalysis(result, format)
	if err != nil {
		return fmt.Errorf("failed to export analysis: %w", err)
	}
	if !strings.HasSuffix(report, "\n") {
		report += "\n"
	}
	return writeOutput(cmd.OutOrStdout(), scoreOut, []byte(report))
}

type batchFailure struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

type batchReport struct {
	RunID    string            `json:"run_id"`
	Results  []types.JobResult `json:"results"`
	Failures []batchFailure    `json:"failures,omitempty"`
}

func runATSBatch(cmd *cobra.Command, _ []string) error {
	if batchFormat != "table" && batchFormat != "json" {
		return fmt.Errorf("unknown batch format %q (want table or json)", batchFormat)
	}

	r, err := loadResume()
	if err != nil {
		return err
	}

	sources := make([]pipeline.JobSource, 0, len(batchJobs)+len(batchURLs))
	for _, path := range batchJobs {
		sources = append(sources, pipeline.JobSource{Path: path})
	}
	for _, u := range batchURLs {
		sources = append(sources, pipeline.JobSource{URL: u})
	}

	scoring, err := scoringOptions(cmd)
	if err != nil {
		return err
	}

	concurrency := settings.Concurrency
	if cmd.Flags().Changed("concurrency") {
		concurrency = batchConcurrency
	}

	opts := pipeline.RunOptions{
		Resume:            r,
		Sources:           sources,
		Scoring:           scoring,
		Concurrency:       concurrency,
		ContinueOnError:   batchContinueOnError,
		RequestsPerSecond: settings.RequestsPerSecond,
		UseBrowser:        settings.UseBrowser,
		BrowserTimeout:    browserTimeout(),
		Verbose:           settings.Verbose,
	}
	if settings.Verbose {
		stderr := cmd.ErrOrStderr()
		opts.OnProgress = func(event pipeline.ProgressEvent) {
			_, _ = fmt.Fprintf(stderr, "[%s] %s\n", event.Step, event.Message)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("batch run failed: %w", err)
	}

	for _, failure := range result.Failures {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %v\n", failure)
	}

	if batchFormat == "json" {
		report := batchReport{RunID: result.RunID.String(), Results: result.Results}
		for _, failure := range result.Failures {
			report.Failures = append(report.Failures, batchFailure{Source: failure.Source.String(), Error: failure.Err.Error()})
		}
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return observability.WriteBatchTable(cmd.OutOrStdout(), result.Results)
}

func runATSPlan(cmd *cobra.Command, _ []string) error {
	r, err := loadResume()
	if err != nil {
		return err
	}
	job, err := planJob.load(cmd)
	if err != nil {
		return err
	}

	target := settings.TargetScore
	if cmd.Flags().Changed("target") {
		target = planTarget
	}
	if target < 0 || target > 100 {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: target %d is outside 0-100, using the default\n", target)
		target = 0
	}

	plan := ats.GenerateOptimizationPlan(r, job, target)
	observability.NewPrinter(cmd.OutOrStdout()).PrintOptimizationPlan(plan)
	return nil
}

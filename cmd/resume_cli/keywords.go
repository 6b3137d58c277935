package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/ingestion"
	"github.com/jonathan/resume-cli/internal/observability"
	"github.com/jonathan/resume-cli/internal/optimizer"
	"github.com/jonathan/resume-cli/internal/types"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Analyze industry keyword coverage and suggest bullet rewrites",
	Long: `Report how well the resume covers an industry's keyword tables. With --job, also list
the job's keywords missing from the resume, most prominent first.

Bullet suggestions pick action verbs deterministically unless --seed is given.`,
	RunE: runKeywords,
}

var (
	keywordsIndustry string
	keywordsJob      string
	keywordsSeed     uint64
	keywordsJSON     bool
)

func init() {
	keywordsCmd.Flags().StringVar(&keywordsIndustry, "industry", "", "Industry ("+strings.Join(optimizer.IndustryNames(), "|")+")")
	keywordsCmd.Flags().StringVarP(&keywordsJob, "job", "j", "", "Job description file to compare against")
	keywordsCmd.Flags().Uint64Var(&keywordsSeed, "seed", 0, "Seed for randomized action verbs")
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "Print JSON instead of a summary")
	rootCmd.AddCommand(keywordsCmd)
}

type keywordsReport struct {
	Analysis    *types.KeywordAnalysis   `json:"analysis"`
	Gap         *types.KeywordGap        `json:"gap,omitempty"`
	Suggestions []types.BulletSuggestion `json:"suggestions"`
}

func runKeywords(cmd *cobra.Command, _ []string) error {
	industry := settings.Industry
	if cmd.Flags().Changed("industry") {
		industry = keywordsIndustry
	}

	r, err := loadResume()
	if err != nil {
		return err
	}

	analysis, err := optimizer.AnalyzeKeywords(r, industry)
	if err != nil {
		return err
	}
	report := keywordsReport{Analysis: analysis}

	var missing []string
	if keywordsJob != "" {
		job, _, err := ingestion.FromFile(keywordsJob)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		report.Gap = optimizer.OptimizeForJob(r, job)
		missing = report.Gap.Missing
	} else {
		for _, c := range analysis.Categories {
			missing = append(missing, c.Missing...)
		}
	}

	var picker optimizer.VerbPicker = optimizer.FirstPicker{}
	if cmd.Flags().Changed("seed") {
		picker = optimizer.NewRandomPicker(keywordsSeed)
	}
	report.Suggestions = optimizer.SuggestExperienceKeywords(r, missing, picker)

	if keywordsJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	p := observability.NewPrinter(cmd.OutOrStdout())
	p.PrintKeywordAnalysis(report.Analysis)
	p.PrintKeywordGap(report.Gap)
	p.PrintBulletSuggestions(report.Suggestions)
	return nil
}

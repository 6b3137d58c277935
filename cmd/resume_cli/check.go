package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/observability"
	"github.com/jonathan/resume-cli/internal/validation"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run writing checks on the resume",
	Long: `Check experience bullets for weak phrases, passive voice, first-person pronouns,
repeated words, missing metrics and excessive length.`,
	RunE: runCheck,
}

var (
	checkJSON        bool
	checkFailOnError bool
	checkSkipStyle   bool
)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print violations as JSON")
	checkCmd.Flags().BoolVar(&checkFailOnError, "fail-on-error", false, "Exit non-zero when any error-severity violation is found")
	checkCmd.Flags().BoolVar(&checkSkipStyle, "skip-style", false, "Skip bullet style checks")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	r, err := loadResume()
	if err != nil {
		return err
	}

	violations := validation.CheckResume(r, &validation.Options{
		MaxBulletChars: settings.MaxBulletChars,
		WeakPhrases:    settings.WeakPhrases,
		SkipStyle:      checkSkipStyle,
	})

	if checkJSON {
		if err := writeJSON(cmd.OutOrStdout(), violations); err != nil {
			return err
		}
	} else {
		observability.NewPrinter(cmd.OutOrStdout()).PrintViolations(violations)
	}

	if n := violations.CountBySeverity("error"); checkFailOnError && n > 0 {
		return fmt.Errorf("%d error-severity violations found", n)
	}
	return nil
}

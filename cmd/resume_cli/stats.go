package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/observability"
	"github.com/jonathan/resume-cli/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show resume statistics",
	RunE:  runStats,
}

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Print statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	r, err := loadResume()
	if err != nil {
		return err
	}

	s := stats.Compute(r, time.Now())
	if statsJSON {
		return writeJSON(cmd.OutOrStdout(), s)
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintStats(s)
	if len(s.Tenures) > 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		return observability.WriteTenureTable(cmd.OutOrStdout(), s)
	}
	return nil
}

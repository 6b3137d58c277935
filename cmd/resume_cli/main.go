// Package main implements the resume_cli tool: render a resume, score it against job
// postings and suggest keyword improvements.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_cli",
	Short: "Resume rendering and ATS scoring CLI",
	Long: `resume_cli renders a resume in several formats and scores it against job postings the
way an applicant tracking system would, with keyword analysis and an optimization plan.

Configuration can be loaded from a JSON, YAML or TOML file using --config or the
RESUME_CLI_CONFIG environment variable. Command-line flags override config file values.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath string
	resumePath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (.json, .yaml, .toml)")
	rootCmd.PersistentFlags().StringVarP(&resumePath, "resume", "r", "", "Path to resume file (.json, .yaml, .toml); defaults to the built-in resume")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

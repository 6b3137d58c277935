package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/rendering"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the resume to stdout",
	Long: `Render the resume in one of: text, color, json, markdown, html, latex, bio.
The default format comes from the config file (output_format), falling back to text.`,
	RunE: runShow,
}

var (
	showFormat   string
	showTemplate string
)

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "", "Output format ("+strings.Join(rendering.Formats, "|")+")")
	showCmd.Flags().StringVar(&showTemplate, "template", "", "LaTeX template path (latex format only)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	format := settings.OutputFormat
	if cmd.Flags().Changed("format") {
		format = showFormat
	}
	template := settings.Template
	if cmd.Flags().Changed("template") {
		template = showTemplate
	}

	r, err := loadResume()
	if err != nil {
		return err
	}

	var out string
	if format == rendering.FormatLaTeX && template != "" {
		out, err = rendering.RenderLaTeX(r, template)
	} else {
		out, err = rendering.Render(r, format)
	}
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return err
}

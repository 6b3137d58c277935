package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-cli/internal/browser"
	"github.com/jonathan/resume-cli/internal/rendering"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the resume to a file",
	Long: `Render the resume to a file. Besides the show formats, pdf prints the HTML
rendering through headless Chrome, which must be installed.

If --out is omitted the file is written to resume.<ext> in the current directory.`,
	RunE: runExport,
}

var (
	exportFormat   string
	exportOut      string
	exportTemplate string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format ("+strings.Join(rendering.Formats, "|")+"|pdf)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "LaTeX template path (latex format only)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format := settings.OutputFormat
	if cmd.Flags().Changed("format") {
		format = exportFormat
	}
	template := settings.Template
	if cmd.Flags().Changed("template") {
		template = exportTemplate
	}
	out := exportOut
	if out == "" {
		out = "resume" + rendering.FileExtension(format)
	}

	r, err := loadResume()
	if err != nil {
		return err
	}

	var content []byte
	switch {
	case format == rendering.FormatPDF:
		if !browser.Available() {
			return errors.New("pdf export requires Chrome or Chromium to be installed")
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		content, err = rendering.RenderPDF(ctx, r, browserTimeout())
	case format == rendering.FormatLaTeX && template != "":
		var s string
		s, err = rendering.RenderLaTeX(r, template)
		content = []byte(s)
	default:
		var s string
		s, err = rendering.Render(r, format)
		content = []byte(s)
	}
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if err := writeOutput(cmd.OutOrStdout(), out, content); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", out, len(content))
	return nil
}

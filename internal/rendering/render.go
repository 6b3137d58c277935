package rendering

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonathan/resume-cli/internal/browser"
	"github.com/jonathan/resume-cli/internal/types"
)

// Output formats
const (
	FormatText     = "text"
	FormatColor    = "color"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatLaTeX    = "latex"
	FormatBio      = "bio"
	FormatPDF      = "pdf"
)

// Formats lists every format Render accepts; PDF output goes through RenderPDF instead
var Formats = []string{FormatText, FormatColor, FormatJSON, FormatMarkdown, FormatHTML, FormatLaTeX, FormatBio}

// FileExtension returns the conventional file extension for a format
func FileExtension(format string) string {
	switch format {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	case FormatLaTeX:
		return ".tex"
	case FormatPDF:
		return ".pdf"
	default:
		return ".txt"
	}
}

// Render renders a resume in one of Formats
func Render(resume *types.Resume, format string) (string, error) {
	if resume == nil {
		return "", &RenderError{Message: "no resume to render"}
	}

	switch format {
	case FormatText:
		return RenderText(resume, false), nil
	case FormatColor:
		return RenderText(resume, true), nil
	case FormatJSON:
		data, err := json.MarshalIndent(resume, "", "  ")
		if err != nil {
			return "", &RenderError{Message: "failed to marshal resume", Cause: err}
		}
		return string(data) + "\n", nil
	case FormatMarkdown:
		return RenderMarkdown(resume), nil
	case FormatHTML:
		return RenderHTML(resume)
	case FormatLaTeX:
		return RenderLaTeX(resume, "")
	case FormatBio:
		return RenderBios(resume), nil
	default:
		return "", &UnknownFormatError{Format: format}
	}
}

// RenderPDF prints the HTML rendering of a resume to PDF with headless Chrome
func RenderPDF(ctx context.Context, resume *types.Resume, timeout time.Duration) ([]byte, error) {
	if resume == nil {
		return nil, &RenderError{Message: "no resume to render"}
	}

	html, err := RenderHTML(resume)
	if err != nil {
		return nil, err
	}

	pdf, err := browser.PrintHTMLToPDF(ctx, html, timeout)
	if err != nil {
		return nil, &RenderError{Message: "failed to print pdf", Cause: err}
	}
	return pdf, nil
}

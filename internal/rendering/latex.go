package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/resume-cli/internal/types"
)

//go:embed templates/resume.tex.tmpl
var defaultLaTeXTemplate string

// RenderLaTeX renders a resume as a LaTeX document. An empty templatePath selects the
// built-in template; otherwise the template is read from disk.
func RenderLaTeX(resume *types.Resume, templatePath string) (string, error) {
	content := defaultLaTeXTemplate
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return "", &TemplateError{
					Message: fmt.Sprintf("template file not found: %s", templatePath),
					Cause:   err,
				}
			}
			return "", &TemplateError{
				Message: fmt.Sprintf("failed to read template file: %s", templatePath),
				Cause:   err,
			}
		}
		content = string(data)
	}

	tmpl, err := parseLaTeXTemplate(content)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, resume); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseLaTeXTemplate parses a LaTeX template with the escape and dates helpers
func parseLaTeXTemplate(content string) (*template.Template, error) {
	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"dates":  latexDateRange,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// latexDateRange turns "2019 — Present" into "2019 -- Present"
func latexDateRange(date string) string {
	date = strings.NewReplacer(" — ", " -- ", "—", " -- ", " – ", " -- ", "–", " -- ").Replace(date)
	return EscapeLaTeX(date)
}

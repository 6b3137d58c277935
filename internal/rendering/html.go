package rendering

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

//go:embed templates/resume.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("resume.html").Parse(htmlTemplateSource))

// RenderHTML renders a resume as a standalone HTML page, also used as the PDF source
func RenderHTML(resume *types.Resume) (string, error) {
	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, resume); err != nil {
		return "", &TemplateError{Message: "failed to execute html template", Cause: err}
	}
	return sb.String(), nil
}

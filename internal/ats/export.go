package ats

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

// Export formats
const (
	FormatJSON = "json"
	FormatText = "text"
	FormatHTML = "html"
)

// ExportFormats lists the formats accepted by ExportAnalysis
var ExportFormats = []string{FormatJSON, FormatText, FormatHTML}

var htmlReport = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(f float64) string { return fmt.Sprintf("%.0f%%", f) },
}).Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>ATS Analysis Report</title></head>
<body>
<h1>ATS Analysis Report</h1>
<p class="overall">Overall score: <strong>{{.OverallScore}}/100</strong></p>
<h2>Score Breakdown</h2>
<table class="breakdown">
<tr><td>Keyword match</td><td>{{pct .Breakdown.KeywordMatch}}</td></tr>
<tr><td>Skills match</td><td>{{pct .Breakdown.SkillsMatch}}</td></tr>
<tr><td>Experience match</td><td>{{pct .Breakdown.ExperienceMatch}}</td></tr>
<tr><td>Format</td><td>{{pct .Breakdown.FormatScore}}</td></tr>
</table>
<h2>Matched Keywords</h2>
<ul class="matched">{{range .MatchedKeywords}}<li>{{.}}</li>{{end}}</ul>
<h2>Missing Keywords</h2>
<ul class="missing">{{range .MissingKeywords}}<li>{{.}}</li>{{end}}</ul>
{{- if .Suggestions}}
<h2>Suggestions</h2>
<ul class="suggestions">{{range .Suggestions}}<li>{{.}}</li>{{end}}</ul>
{{- end}}
{{- if .Recommendations}}
<h2>Recommendations</h2>
<ul class="recommendations">{{range .Recommendations}}<li class="{{.Impact}}"><b>{{.Category}}</b> ({{.Impact}}): {{.Suggestion}}</li>{{end}}</ul>
{{- end}}
</body>
</html>
`))

// ExportAnalysis renders a result as json, text or html
func ExportAnalysis(result *types.ATSResult, format string) (string, error) {
	if result == nil {
		return "", &ExportError{Message: "no analysis to export"}
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", &ExportError{Message: "failed to marshal result", Cause: err}
		}
		return string(data), nil
	case FormatText:
		return exportText(result), nil
	case FormatHTML:
		var sb strings.Builder
		if err := htmlReport.Execute(&sb, result); err != nil {
			return "", &ExportError{Message: "failed to execute html template", Cause: err}
		}
		return sb.String(), nil
	default:
		return "", &ExportError{Message: fmt.Sprintf("unsupported format %q (want one of %s)", format, strings.Join(ExportFormats, ", "))}
	}
}

func exportText(result *types.ATSResult) string {
	var sb strings.Builder

	sb.WriteString("ATS ANALYSIS REPORT\n")
	sb.WriteString("===================\n\n")
	fmt.Fprintf(&sb, "Overall Score: %d/100\n\n", result.OverallScore)

	sb.WriteString("Score Breakdown:\n")
	fmt.Fprintf(&sb, "  Keyword Match:    %.0f%%\n", result.Breakdown.KeywordMatch)
	fmt.Fprintf(&sb, "  Skills Match:     %.0f%%\n", result.Breakdown.SkillsMatch)
	fmt.Fprintf(&sb, "  Experience Match: %.0f%%\n", result.Breakdown.ExperienceMatch)
	fmt.Fprintf(&sb, "  Format Score:     %.0f%%\n\n", result.Breakdown.FormatScore)

	fmt.Fprintf(&sb, "Matched Keywords (%d): %s\n", len(result.MatchedKeywords), strings.Join(result.MatchedKeywords, ", "))
	fmt.Fprintf(&sb, "Missing Keywords (%d): %s\n", len(result.MissingKeywords), strings.Join(result.MissingKeywords, ", "))

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for i, s := range result.Suggestions {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, s)
		}
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, r := range result.Recommendations {
			fmt.Fprintf(&sb, "  [%s] %s: %s\n", strings.ToUpper(r.Impact), r.Category, r.Suggestion)
		}
	}

	return sb.String()
}

package parsing

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-cli/internal/ats"
	"github.com/jonathan/resume-cli/internal/types"
)

// maxExtractedKeywords caps how many keywords are inferred from free text
const maxExtractedKeywords = 15

type section int

const (
	sectionDescription section = iota
	sectionRequirements
	sectionPreferred
)

var (
	requirementsHeading = regexp.MustCompile(`(?i)^(requirements|qualifications|minimum qualifications|basic qualifications|required skills|must[- ]haves?|what you('ll)? (need|bring)|you have)\s*:?$`)
	preferredHeading    = regexp.MustCompile(`(?i)^(preferred|preferred qualifications|preferred skills|nice[- ]to[- ]haves?|bonus( points)?|pluses)\s*:?$`)
	genericHeading      = regexp.MustCompile(`^[A-Za-z][A-Za-z '&/-]{0,40}:$`)
	labeledLine         = regexp.MustCompile(`(?i)^(job title|title|role|position|company|employer)\s*:\s*(.+)$`)
	bulletMarker        = regexp.MustCompile(`^(\s*[-*•·‣▪]\s*|\s*\d+[.)]\s+)`)
	titleAtCompany      = regexp.MustCompile(`^(.+?)\s+(?:at|@)\s+(.+)$`)
	numericToken        = regexp.MustCompile(`^[\d.+#-]+$`)
	markdownHeading     = regexp.MustCompile(`^#{1,6}\s+`)
)

// ParseError represents a posting that could not be parsed
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// ParseJobText turns a pasted job posting into a JobDescription.
//
// The first line is taken as the title unless labelled lines ("Title:", "Company:") say
// otherwise; "Senior Engineer at Acme" yields both. Bulleted lines under requirement or
// preferred-skill headings fill those lists; everything else becomes the description.
// Keywords are the densest terms in the whole posting.
func ParseJobText(text string) (*types.JobDescription, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Message: "job posting is empty"}
	}

	job := &types.JobDescription{}
	var description []string
	var requirements, preferred []string
	current := sectionDescription
	titleFromFirstLine := false

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		// markdown headings and bold labels read the same as plain ones
		plain := strings.Trim(markdownHeading.ReplaceAllString(line, ""), "*_ ")

		if m := labeledLine.FindStringSubmatch(plain); m != nil {
			switch strings.ToLower(m[1]) {
			case "company", "employer":
				job.Company = strings.TrimSpace(m[2])
			default:
				job.Title = strings.TrimSpace(m[2])
			}
			continue
		}

		switch {
		case requirementsHeading.MatchString(plain):
			current = sectionRequirements
			continue
		case preferredHeading.MatchString(plain):
			current = sectionPreferred
			continue
		case genericHeading.MatchString(plain):
			current = sectionDescription
			continue
		}

		if job.Title == "" && i == firstLineIndex(text) {
			job.Title = plain
			titleFromFirstLine = true
			continue
		}

		item := strings.TrimSpace(bulletMarker.ReplaceAllString(line, ""))
		switch current {
		case sectionRequirements:
			requirements = append(requirements, item)
		case sectionPreferred:
			preferred = append(preferred, item)
		default:
			description = append(description, item)
		}
	}

	if titleFromFirstLine && job.Company == "" {
		if m := titleAtCompany.FindStringSubmatch(job.Title); m != nil {
			job.Title, job.Company = m[1], m[2]
		}
	}

	job.Description = strings.Join(description, " ")
	job.Requirements = NormalizeSkills(requirements)
	job.PreferredSkills = withoutAny(NormalizeSkills(preferred), job.Requirements)
	job.Keywords = extractKeywords(text)

	return job, nil
}

// firstLineIndex returns the index of the first non-blank line
func firstLineIndex(text string) int {
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return i
		}
	}
	return -1
}

// withoutAny drops items already present in exclude, ignoring case
func withoutAny(items, exclude []string) []string {
	seen := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		seen[strings.ToLower(e)] = true
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[strings.ToLower(item)] {
			out = append(out, item)
		}
	}
	return out
}

// extractKeywords returns the densest non-numeric keywords of text
func extractKeywords(text string) []string {
	candidates := make([]string, 0)
	for _, keyword := range ats.ExtractKeywords(text) {
		if numericToken.MatchString(keyword) {
			continue
		}
		candidates = append(candidates, keyword)
	}

	density := ats.CalculateDensity(text, candidates)
	sort.SliceStable(candidates, func(i, j int) bool {
		return density[candidates[i]] > density[candidates[j]]
	})

	if len(candidates) > maxExtractedKeywords {
		candidates = candidates[:maxExtractedKeywords]
	}
	return candidates
}

package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-cli/internal/optimizer"
	"github.com/jonathan/resume-cli/internal/types"
)

var (
	passiveVoicePattern = regexp.MustCompile(`(?i)\b(was|were|been|being|is|are)\s+\w+ed\b`)
	firstPersonPattern  = regexp.MustCompile(`(?i)\b(i|me|my|mine|we|our)\b`)
	metricPattern       = regexp.MustCompile(`\d`)
	wordPattern         = regexp.MustCompile(`[\p{L}\p{N}'-]+`)
)

// CheckPassiveVoice flags "was deployed" style constructions
func CheckPassiveVoice(resume *types.Resume) []types.Violation {
	violations := make([]types.Violation, 0)
	for _, t := range collectTexts(resume) {
		if match := passiveVoicePattern.FindString(t.Text); match != "" {
			violations = append(violations, violationAt(t, "passive_voice", "warning",
				fmt.Sprintf("passive construction %q", match)))
		}
	}
	return violations
}

// CheckFirstPerson flags pronouns, which resumes conventionally omit
func CheckFirstPerson(resume *types.Resume) []types.Violation {
	violations := make([]types.Violation, 0)
	for _, t := range collectTexts(resume) {
		if match := firstPersonPattern.FindString(t.Text); match != "" {
			violations = append(violations, violationAt(t, "first_person", "info",
				fmt.Sprintf("first-person pronoun %q", match)))
		}
	}
	return violations
}

// CheckRepeatedWords flags the same word twice in a row, e.g. "the the"
func CheckRepeatedWords(resume *types.Resume) []types.Violation {
	violations := make([]types.Violation, 0)
	for _, t := range collectTexts(resume) {
		words := wordPattern.FindAllString(t.Text, -1)
		for i := 1; i < len(words); i++ {
			if strings.EqualFold(words[i], words[i-1]) {
				violations = append(violations, violationAt(t, "repeated_word", "error",
					fmt.Sprintf("repeated word %q", words[i])))
				break
			}
		}
	}
	return violations
}

// CheckBulletStyle flags experience bullets without a leading action verb or without any number
func CheckBulletStyle(resume *types.Resume) []types.Violation {
	violations := make([]types.Violation, 0)
	for _, t := range collectTexts(resume) {
		if t.Section != SectionExperience {
			continue
		}
		if !optimizer.StartsWithActionVerb(t.Text) {
			violations = append(violations, violationAt(t, "missing_action_verb", "info",
				"bullet does not start with an action verb"))
		}
		if !metricPattern.MatchString(t.Text) {
			violations = append(violations, violationAt(t, "missing_metric", "info",
				"bullet has no quantified result"))
		}
	}
	return violations
}

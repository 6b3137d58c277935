package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

// DefaultWeakPhrases are filler phrases that weaken a bullet
var DefaultWeakPhrases = []string{
	"responsible for",
	"duties included",
	"worked on",
	"helped with",
	"assisted with",
	"team player",
	"hard worker",
	"go-getter",
	"synergy",
	"think outside the box",
	"detail-oriented",
	"various tasks",
}

// CheckForbiddenPhrases reports texts containing any of phrases, case-insensitively.
// Only the first matching phrase per text is reported.
func CheckForbiddenPhrases(resume *types.Resume, phrases []string) []types.Violation {
	violations := make([]types.Violation, 0)
	if len(phrases) == 0 {
		return violations
	}

	for _, t := range collectTexts(resume) {
		lower := strings.ToLower(t.Text)
		for _, phrase := range phrases {
			normalized := strings.ToLower(strings.TrimSpace(phrase))
			if normalized == "" {
				continue
			}
			if strings.Contains(lower, normalized) {
				violations = append(violations, violationAt(t, "weak_phrase", "warning",
					fmt.Sprintf("contains weak phrase %q", phrase)))
				break
			}
		}
	}

	return violations
}

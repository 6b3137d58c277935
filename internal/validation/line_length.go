package validation

import (
	"fmt"
	"unicode/utf8"

	"github.com/jonathan/resume-cli/internal/types"
)

// DefaultMaxBulletChars is the longest bullet that reads comfortably on one or two lines
const DefaultMaxBulletChars = 200

// ValidateBulletLengths reports experience bullets and project descriptions longer than maxChars
func ValidateBulletLengths(resume *types.Resume, maxChars int) []types.Violation {
	violations := make([]types.Violation, 0)
	if maxChars <= 0 {
		maxChars = DefaultMaxBulletChars
	}

	for _, t := range collectTexts(resume) {
		if t.Section == SectionProfile {
			continue
		}
		count := utf8.RuneCountInString(t.Text)
		if count > maxChars {
			v := violationAt(t, "long_bullet", "error",
				fmt.Sprintf("%d characters exceeds the %d character limit", count, maxChars))
			v.CharCount = intPtr(count)
			violations = append(violations, v)
		}
	}

	return violations
}

package optimizer

import (
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-cli/internal/types"
)

// ActionVerbs are strong openers for experience bullets
var ActionVerbs = []string{
	"Architected", "Automated", "Built", "Delivered", "Designed", "Developed",
	"Drove", "Engineered", "Implemented", "Improved", "Launched", "Led",
	"Migrated", "Optimized", "Reduced", "Scaled", "Shipped", "Streamlined",
}

var actionVerbSet = func() map[string]bool {
	set := make(map[string]bool, len(ActionVerbs))
	for _, v := range ActionVerbs {
		set[strings.ToLower(v)] = true
	}
	for _, v := range []string{"created", "established", "managed", "mentored", "owned", "spearheaded", "achieved", "increased"} {
		set[v] = true
	}
	return set
}()

// StartsWithActionVerb reports whether a bullet opens with a recognised action verb
func StartsWithActionVerb(bullet string) bool {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(strings.Trim(fields[0], ".,;:"))
	return actionVerbSet[first]
}

// VerbPicker chooses an action verb for a bullet rewrite
type VerbPicker interface {
	Pick(verbs []string) string
}

// RandomPicker picks verbs uniformly at random from a seeded source
type RandomPicker struct {
	rng *rand.Rand
}

// NewRandomPicker returns a RandomPicker seeded with seed
func NewRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Pick returns a random verb, or "" when verbs is empty
func (p *RandomPicker) Pick(verbs []string) string {
	if len(verbs) == 0 {
		return ""
	}
	return verbs[p.rng.IntN(len(verbs))]
}

// FirstPicker always picks the first verb
type FirstPicker struct{}

// Pick returns verbs[0], or "" when verbs is empty
func (FirstPicker) Pick(verbs []string) string {
	if len(verbs) == 0 {
		return ""
	}
	return verbs[0]
}

// SuggestExperienceKeywords proposes rewrites of experience bullets that do not open with an
// action verb or that mention none of keywords. Missing keywords are offered in turn.
func SuggestExperienceKeywords(resume *types.Resume, keywords []string, picker VerbPicker) []types.BulletSuggestion {
	suggestions := make([]types.BulletSuggestion, 0)
	if resume == nil {
		return suggestions
	}
	if picker == nil {
		picker = FirstPicker{}
	}

	absent := absentKeywords(resume, keywords)
	next := 0

	for _, exp := range resume.Experience {
		for _, bullet := range exp.Bullets {
			text := strings.TrimSpace(bullet)
			if text == "" {
				continue
			}

			suggested := text
			reasons := make([]string, 0, 2)

			if !StartsWithActionVerb(text) {
				suggested = picker.Pick(ActionVerbs) + " " + lowerFirst(suggested)
				reasons = append(reasons, "start with an action verb")
			}

			if len(absent) > 0 && !mentionsAny(text, keywords) {
				keyword := absent[next%len(absent)]
				next++
				suggested = strings.TrimRight(suggested, ".") + " using " + keyword
				reasons = append(reasons, "mention "+keyword)
			}

			if len(reasons) == 0 {
				continue
			}
			suggestions = append(suggestions, types.BulletSuggestion{
				Company:   exp.Company,
				Original:  bullet,
				Suggested: suggested,
				Reason:    strings.Join(reasons, "; "),
			})
		}
	}

	return suggestions
}

// absentKeywords returns keywords that appear nowhere in the resume's experience bullets
func absentKeywords(resume *types.Resume, keywords []string) []string {
	var sb strings.Builder
	for _, exp := range resume.Experience {
		for _, bullet := range exp.Bullets {
			sb.WriteString(strings.ToLower(bullet))
			sb.WriteString(" ")
		}
	}
	all := sb.String()

	absent := make([]string, 0)
	for _, keyword := range keywords {
		if !strings.Contains(all, strings.ToLower(keyword)) {
			absent = append(absent, keyword)
		}
	}
	return absent
}

func mentionsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// lowerFirst lowercases the first letter of s unless the first word looks like an acronym
func lowerFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	if second, _ := utf8.DecodeRuneInString(s[size:]); unicode.IsUpper(second) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

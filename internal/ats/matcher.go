package ats

import "strings"

// CommonATSKeywords are generic resume terms every job is checked for
var CommonATSKeywords = []string{
	"experience",
	"team",
	"project",
	"development",
	"management",
	"leadership",
	"communication",
	"problem solving",
	"collaboration",
	"analysis",
	"design",
	"implementation",
	"optimization",
	"results",
}

// KeywordMatch partitions target keywords by presence in the resume
type KeywordMatch struct {
	Matched []string
	Missing []string
	Score   float64
}

// TargetKeywords returns jobKeywords followed by common, deduplicated case-insensitively
// with the first occurrence kept.
func TargetKeywords(jobKeywords, common []string) []string {
	seen := make(map[string]bool)
	targets := make([]string, 0, len(jobKeywords)+len(common))
	for _, list := range [][]string{jobKeywords, common} {
		for _, keyword := range list {
			key := strings.ToLower(keyword)
			if seen[key] {
				continue
			}
			seen[key] = true
			targets = append(targets, keyword)
		}
	}
	return targets
}

// MatchKeywords splits targets into those found in resumeText and the rest, preserving
// target order within each side. A keyword matches when it appears anywhere in the text,
// ignoring case; it does not need to be a whole word.
func MatchKeywords(resumeText string, targets []string) KeywordMatch {
	match := KeywordMatch{
		Matched: make([]string, 0),
		Missing: make([]string, 0),
	}
	if len(targets) == 0 {
		return match
	}

	text := strings.ToLower(resumeText)
	for _, keyword := range targets {
		if strings.Contains(text, strings.ToLower(keyword)) {
			match.Matched = append(match.Matched, keyword)
		} else {
			match.Missing = append(match.Missing, keyword)
		}
	}

	match.Score = float64(len(match.Matched)) / float64(len(targets)) * 100
	return match
}

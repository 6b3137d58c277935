package ats

import (
	"regexp"
	"strings"
)

// minKeywordLength is the shortest token kept as a keyword; shorter tokens are noise
const minKeywordLength = 3

var (
	nonKeywordChars      = regexp.MustCompile(`[^a-zA-Z0-9\s+#.-]`)
	capitalizedPhraseRe  = regexp.MustCompile(`[A-Z][a-z]+\s[A-Z][a-z]+`)
	dottedTokenRe        = regexp.MustCompile(`\w+\.\w+`)
	slashTokenRe         = regexp.MustCompile(`\w+/\w+`)
	technicalPhrasePatts = compilePhrases(technicalPhrases)
)

// stopWords are dropped from single-word keywords
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true, "not": true,
	"you": true, "all": true, "can": true, "had": true, "her": true, "was": true,
	"one": true, "our": true, "out": true, "has": true, "have": true, "been": true,
	"will": true, "with": true, "this": true, "that": true, "from": true, "they": true,
	"were": true, "said": true, "each": true, "which": true, "their": true, "would": true,
	"there": true, "what": true, "about": true, "into": true, "than": true, "them": true,
	"these": true, "some": true, "could": true, "other": true, "should": true, "does": true,
	"also": true, "your": true, "must": true, "may": true,
}

// technicalPhrases are multi-word terms detected as a unit
var technicalPhrases = []string{
	"machine learning",
	"artificial intelligence",
	"deep learning",
	"data science",
	"natural language processing",
	"computer vision",
	"full stack",
	"front end",
	"back end",
	"ci/cd",
	"continuous integration",
	"continuous deployment",
	"test driven development",
	"object oriented",
	"project management",
	"agile methodology",
	"version control",
	"cloud computing",
	"distributed systems",
	"system design",
	"rest api",
	"user experience",
	"problem solving",
	"cross functional",
}

func compilePhrases(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, phrase := range phrases {
		patterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(phrase))
	}
	return patterns
}

// ExtractKeywords tokenizes free text into deduplicated lowercase keywords, in first-seen
// order: single words first, then detected technical phrases.
func ExtractKeywords(text string) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0)
	add := func(keyword string) {
		if keyword == "" || seen[keyword] {
			return
		}
		seen[keyword] = true
		keywords = append(keywords, keyword)
	}

	cleaned := nonKeywordChars.ReplaceAllString(strings.ToLower(text), " ")
	for _, word := range strings.Fields(cleaned) {
		if len(word) < minKeywordLength || stopWords[word] {
			continue
		}
		add(word)
	}

	for _, phrase := range extractPhrases(text) {
		add(phrase)
	}

	return keywords
}

// extractPhrases scans original-case text for multi-word and punctuated technical terms
func extractPhrases(text string) []string {
	phrases := make([]string, 0)

	for _, pattern := range technicalPhrasePatts {
		for _, match := range pattern.FindAllString(text, -1) {
			phrases = append(phrases, strings.ToLower(match))
		}
	}
	for _, re := range []*regexp.Regexp{capitalizedPhraseRe, dottedTokenRe, slashTokenRe} {
		for _, match := range re.FindAllString(text, -1) {
			phrases = append(phrases, strings.ToLower(match))
		}
	}

	return phrases
}

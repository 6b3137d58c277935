package ats

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CalculateDensity returns, for each keyword, its whole-word occurrences as a percentage of
// the total word count of text. Values are not clamped. Empty text yields 0 for every keyword.
func CalculateDensity(text string, keywords []string) map[string]float64 {
	density := make(map[string]float64, len(keywords))
	totalWords := len(strings.Fields(text))

	for _, keyword := range keywords {
		if totalWords == 0 {
			density[keyword] = 0
			continue
		}
		density[keyword] = float64(countOccurrences(text, keyword)) / float64(totalWords) * 100
	}

	return density
}

// countOccurrences counts case-insensitive matches of keyword in text that are not
// glued to a neighbouring letter, digit or underscore. Keywords may start or end with
// symbols ("c++", "c#", ".net"), which a \b boundary would never match.
func countOccurrences(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(keyword))
	if err != nil {
		return 0
	}

	count := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		before, _ := utf8.DecodeLastRuneInString(text[:loc[0]])
		after, _ := utf8.DecodeRuneInString(text[loc[1]:])
		if !isWordRune(before) && !isWordRune(after) {
			count++
		}
	}
	return count
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

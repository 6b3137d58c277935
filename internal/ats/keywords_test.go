package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords_WordsAndPhrases(t *testing.T) {
	keywords := ExtractKeywords("We need Node.js and CI/CD experience with Machine Learning")

	assert.Equal(t, []string{
		"need",
		"node.js",
		"experience",
		"machine",
		"learning",
		"machine learning",
		"ci/cd",
	}, keywords)
}

func TestExtractKeywords_DropsShortTokensAndStopWords(t *testing.T) {
	keywords := ExtractKeywords("The team is on it and will ship Go to prod")

	assert.Equal(t, []string{"team", "ship", "prod"}, keywords)
}

func TestExtractKeywords_KeepsAllowedPunctuation(t *testing.T) {
	keywords := ExtractKeywords("c++ c# f# objective-c, (rust)!")

	assert.Contains(t, keywords, "c++")
	assert.Contains(t, keywords, "objective-c")
	assert.Contains(t, keywords, "rust")
	assert.NotContains(t, keywords, "c#", "two-character tokens are dropped")
}

func TestExtractKeywords_DeduplicatesCaseInsensitively(t *testing.T) {
	keywords := ExtractKeywords("Kubernetes kubernetes KUBERNETES")

	assert.Equal(t, []string{"kubernetes"}, keywords)
}

func TestExtractKeywords_CapitalizedPhrase(t *testing.T) {
	keywords := ExtractKeywords("Experience with Google Cloud required")

	assert.Contains(t, keywords, "google cloud")
}

func TestExtractKeywords_Empty(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("   \n\t "))
}

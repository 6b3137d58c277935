package ats

import (
	"math"

	"github.com/jonathan/resume-cli/internal/types"
)

// Weights is a weighting profile for the four sub-scores. Each profile sums to 1.
type Weights struct {
	Keyword    float64
	Skills     float64
	Experience float64
	Format     float64
}

// StrictWeights emphasises keyword and skills matching
var StrictWeights = Weights{Keyword: 0.4, Skills: 0.3, Experience: 0.2, Format: 0.1}

// LenientWeights is the default profile
var LenientWeights = Weights{Keyword: 0.3, Skills: 0.25, Experience: 0.25, Format: 0.2}

// Aggregate combines a breakdown into the overall 0-100 score
func Aggregate(breakdown types.ScoreBreakdown, strict bool) int {
	w := LenientWeights
	if strict {
		w = StrictWeights
	}

	total := breakdown.KeywordMatch*w.Keyword +
		breakdown.SkillsMatch*w.Skills +
		breakdown.ExperienceMatch*w.Experience +
		breakdown.FormatScore*w.Format

	return int(clampScore(math.Round(total)))
}

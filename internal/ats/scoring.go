package ats

import (
	"math"
	"strings"

	"github.com/jonathan/resume-cli/internal/types"
)

// Experience scoring constants
const (
	relevantExperienceBase   = 70.0
	irrelevantExperienceBase = 30.0
	yearsPerPosition         = 2
	yearsPenaltyPerYear      = 5.0
	maxYearsPenalty          = 30.0
	defaultExpectedYears     = 3
)

// expectedYears maps experience level to the years a job at that level expects
var expectedYears = map[string]int{
	types.LevelEntry:     1,
	types.LevelMid:       4,
	types.LevelSenior:    8,
	types.LevelExecutive: 15,
}

// Format scoring constants
const (
	defaultFormatScore       = 85.0
	missingNamePenalty       = 10.0
	missingEmailPenalty      = 10.0
	missingExperiencePenalty = 20.0
	missingTechStackPenalty  = 15.0
	missingEducationPenalty  = 10.0
)

// computeSkillsScore counts tech-stack entries that contain, or are contained in, any job
// requirement or preferred skill.
func computeSkillsScore(resume *types.Resume, job *types.JobDescription) float64 {
	if job == nil {
		return 0.0
	}

	jobSkills := make([]string, 0, len(job.Requirements)+len(job.PreferredSkills))
	for _, skill := range job.Requirements {
		jobSkills = append(jobSkills, strings.ToLower(skill))
	}
	for _, skill := range job.PreferredSkills {
		jobSkills = append(jobSkills, strings.ToLower(skill))
	}
	if len(jobSkills) == 0 {
		return 0.0
	}

	matched := 0
	if resume != nil {
		for _, tech := range resume.TechStack {
			techLower := strings.ToLower(tech)
			for _, jobSkill := range jobSkills {
				if strings.Contains(techLower, jobSkill) || strings.Contains(jobSkill, techLower) {
					matched++
					break
				}
			}
		}
	}

	return math.Min(float64(matched)/float64(len(jobSkills))*100, 100)
}

// computeExperienceScore rewards experience mentioning job keywords and penalises a
// mismatch between estimated and expected years.
func computeExperienceScore(resume *types.Resume, job *types.JobDescription, level string) float64 {
	score := irrelevantExperienceBase
	if hasRelevantExperience(resume, job) {
		score = relevantExperienceBase
	}

	if level == "" {
		return score
	}

	positions := 0
	if resume != nil {
		positions = len(resume.Experience)
	}
	years := positions * yearsPerPosition

	expected, ok := expectedYears[level]
	if !ok {
		expected = defaultExpectedYears
	}

	penalty := math.Min(math.Abs(float64(years-expected))*yearsPenaltyPerYear, maxYearsPenalty)
	return math.Max(score-penalty, 0)
}

// hasRelevantExperience reports whether any experience title or bullet contains a job keyword
func hasRelevantExperience(resume *types.Resume, job *types.JobDescription) bool {
	if resume == nil || job == nil {
		return false
	}

	for _, exp := range resume.Experience {
		candidates := append([]string{exp.Title}, exp.Bullets...)
		for _, text := range candidates {
			textLower := strings.ToLower(text)
			for _, keyword := range job.Keywords {
				if strings.Contains(textLower, strings.ToLower(keyword)) {
					return true
				}
			}
		}
	}
	return false
}

// computeFormatScore deducts for each missing core section
func computeFormatScore(resume *types.Resume, includeFormatAnalysis bool) float64 {
	if !includeFormatAnalysis {
		return defaultFormatScore
	}
	if resume == nil {
		resume = &types.Resume{}
	}

	score := 100.0
	if resume.Personal.Name == "" {
		score -= missingNamePenalty
	}
	if resume.Personal.Email == "" {
		score -= missingEmailPenalty
	}
	if len(resume.Experience) == 0 {
		score -= missingExperiencePenalty
	}
	if len(resume.TechStack) == 0 {
		score -= missingTechStackPenalty
	}
	if len(resume.Education) == 0 {
		score -= missingEducationPenalty
	}

	return math.Max(score, 0)
}

// clampScore clamps a score to [0, 100]
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Package stats computes summary statistics for a resume.
package stats

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-cli/internal/optimizer"
	"github.com/jonathan/resume-cli/internal/types"
)

var (
	// date ranges are "<start> — <end>"; en dashes and hyphens are accepted as well
	rangeSeparator = regexp.MustCompile(`\s*[—–-]\s*`)
	yearPattern    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	metricPattern  = regexp.MustCompile(`\d+(\.\d+)?\s*(%|x\b|k\b|m\b|\+)|\$\s?\d|\b\d{2,}\b`)
	currentWords   = map[string]bool{"present": true, "current": true, "now": true, "today": true}
)

// ParseDateRange parses "2019 — 2023" or "2021 — Present" into start and end years.
// An open-ended range ends in now's year and reports current as true.
func ParseDateRange(dateRange string, now time.Time) (start, end int, current bool, err error) {
	parts := rangeSeparator.Split(strings.TrimSpace(dateRange), 2)
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("date range %q: missing separator", dateRange)
	}

	start, err = parseYear(parts[0])
	if err != nil {
		return 0, 0, false, fmt.Errorf("date range %q: %w", dateRange, err)
	}

	if currentWords[strings.ToLower(strings.TrimSpace(parts[1]))] {
		return start, now.Year(), true, nil
	}

	end, err = parseYear(parts[1])
	if err != nil {
		return 0, 0, false, fmt.Errorf("date range %q: %w", dateRange, err)
	}
	if end < start {
		return 0, 0, false, fmt.Errorf("date range %q: ends before it starts", dateRange)
	}
	return start, end, false, nil
}

func parseYear(s string) (int, error) {
	match := yearPattern.FindString(s)
	if match == "" {
		return 0, fmt.Errorf("no year in %q", s)
	}
	return strconv.Atoi(match)
}

// Compute summarises a resume as of now
func Compute(resume *types.Resume, now time.Time) *types.ResumeStats {
	stats := &types.ResumeStats{
		Tenures: make([]types.CompanyTenure, 0),
	}
	if resume == nil {
		return stats
	}

	stats.Positions = len(resume.Experience)
	stats.Technologies = len(resume.TechStack)
	stats.Projects = len(resume.Projects)

	companies := make(map[string]bool)
	actionVerbBullets := 0
	spans := make([][2]int, 0, len(resume.Experience))

	for _, exp := range resume.Experience {
		companies[strings.ToLower(exp.Company)] = true

		for _, bullet := range exp.Bullets {
			stats.Bullets++
			if metricPattern.MatchString(bullet) {
				stats.BulletsWithMetrics++
			}
			if optimizer.StartsWithActionVerb(bullet) {
				actionVerbBullets++
			}
		}

		start, end, current, err := ParseDateRange(exp.Date, now)
		if err != nil {
			stats.UnparsedDates = append(stats.UnparsedDates, exp.Date)
			continue
		}
		stats.Tenures = append(stats.Tenures, types.CompanyTenure{
			Company: exp.Company,
			Title:   exp.Title,
			Start:   start,
			End:     end,
			Current: current,
			Years:   float64(end - start),
		})
		spans = append(spans, [2]int{start, end})
	}

	stats.Companies = len(companies)
	stats.TotalYears = float64(mergedYears(spans))
	if stats.Bullets > 0 {
		stats.ActionVerbRatio = float64(actionVerbBullets) / float64(stats.Bullets) * 100
	}
	return stats
}

// mergedYears sums the lengths of year spans, counting overlapping years once
func mergedYears(spans [][2]int) int {
	if len(spans) == 0 {
		return 0
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i][0] < spans[j][0]
	})

	total := 0
	cur := spans[0]
	for _, s := range spans[1:] {
		if s[0] <= cur[1] {
			if s[1] > cur[1] {
				cur[1] = s[1]
			}
			continue
		}
		total += cur[1] - cur[0]
		cur = s
	}
	return total + cur[1] - cur[0]
}

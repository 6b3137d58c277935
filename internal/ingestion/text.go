// Package ingestion loads job descriptions from files, pasted text and job board URLs.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/resume-cli/internal/document"
	"github.com/jonathan/resume-cli/internal/parsing"
	"github.com/jonathan/resume-cli/internal/schemas"
	"github.com/jonathan/resume-cli/internal/types"
)

var (
	multiSpace     = regexp.MustCompile(`\s+`)
	excessiveBlank = regexp.MustCompile(`\n\n\n+`)
)

// FormatText marks a job file that is parsed as free text
const FormatText = "text"

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = excessiveBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}

	if isBulletLine(trimmed) {
		// unicode bullets become markdown ones so the parser sees one marker style
		for _, marker := range []string{"• ", "· "} {
			if strings.HasPrefix(trimmed, marker) {
				trimmed = "- " + strings.TrimPrefix(trimmed, marker)
			}
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		return strings.Repeat(" ", indent) + trimmed
	}

	leadingSpace := len(line) - len(trimmed)
	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	return strings.Repeat(" ", leadingSpace) + content
}

func isBulletLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

// FromText cleans and parses a pasted job posting
func FromText(text string) (*types.JobDescription, *Metadata, error) {
	cleaned := CleanText(text)
	job, err := parseCleaned(cleaned)
	if err != nil {
		return nil, nil, err
	}

	metadata := NewMetadata(cleaned, SourceText)
	metadata.Format = FormatText
	return job, metadata, nil
}

// FromFile loads a job description from path. Structured files (.json, .yaml, .yml,
// .toml) are schema-validated and decoded; anything else is parsed as free text.
func FromFile(path string) (*types.JobDescription, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: file not found: %w", ErrReadFailed, err)
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrReadFailed, err)
	}

	format := document.FormatFromPath(path)
	if format == "" {
		job, metadata, err := FromText(string(content))
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		metadata.Source = SourceFile
		metadata.Path = path
		return job, metadata, nil
	}

	var job types.JobDescription
	if err := document.Decode(content, format, schemas.JobDescription, &job); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidJob, path, err)
	}
	if err := job.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidJob, path, err)
	}

	metadata := NewMetadata(string(content), SourceFile)
	metadata.Path = path
	metadata.Format = format
	return &job, metadata, nil
}

func parseCleaned(cleaned string) (*types.JobDescription, error) {
	job, err := parsing.ParseJobText(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	return job, nil
}

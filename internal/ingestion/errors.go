package ingestion

import "errors"

var (
	// ErrInvalidURL is returned when URL is malformed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
	// ErrReadFailed is returned when a job file cannot be read
	ErrReadFailed = errors.New("failed to read job file")
	// ErrInvalidJob is returned when the loaded posting has neither title nor description
	ErrInvalidJob = errors.New("invalid job description")
)

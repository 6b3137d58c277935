package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/jonathan/resume-cli/internal/fetch"
	"github.com/jonathan/resume-cli/internal/types"
)

// retryDelay is how long FromURL waits before retrying a retryable fetch error
var retryDelay = time.Second

// URLOptions configures FromURL.
type URLOptions struct {
	// Fetcher is shared across calls in a batch; nil builds a one-off uncached fetcher.
	Fetcher *fetch.CachedFetcher
	// UseBrowser enables headless rendering when the HTTP response has too little text.
	UseBrowser     bool
	BrowserTimeout time.Duration
	Verbose        bool
}

// FromURL fetches a job posting, converts its main content to Markdown and parses it.
// Platform detection picks the content and noise selectors.
func FromURL(ctx context.Context, urlStr string, opts URLOptions) (*types.JobDescription, *Metadata, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidURL, urlStr)
	}

	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected platform: %s", platform)
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewCachedFetcher(&fetch.CachedFetcherConfig{SkipCache: true})
	}

	result, err := fetchWithRetry(ctx, fetcher, urlStr, opts.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes (cached: %t)", len(result.HTML), result.FromCache)
	}

	html := result.HTML
	usedBrowser := false
	if opts.UseBrowser && fetch.ShouldUseBrowser(result.Text) {
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering",
				len(result.Text), fetch.MinContentLength)
		}
		rendered, browserErr := fetch.WithBrowser(ctx, urlStr, opts.BrowserTimeout, opts.Verbose)
		if browserErr != nil {
			if opts.Verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else {
			html = rendered
			usedBrowser = true
		}
	}

	markdown, err := HTMLToMarkdown(html, platform)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	cleaned := CleanText(markdown)
	if opts.Verbose {
		log.Printf("[VERBOSE] Cleaned text: %d chars", len(cleaned))
	}

	job, err := parseCleaned(cleaned)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", urlStr, err)
	}

	metadata := NewMetadata(cleaned, SourceURL)
	metadata.URL = urlStr
	metadata.Format = FormatText
	metadata.Platform = string(platform)
	metadata.FromCache = result.FromCache
	metadata.Browser = usedBrowser
	return job, metadata, nil
}

// fetchWithRetry retries once when the fetch error is marked retryable (transport errors,
// 429 and 5xx responses)
func fetchWithRetry(ctx context.Context, fetcher *fetch.CachedFetcher, urlStr string, verbose bool) (*fetch.CachedResult, error) {
	result, err := fetcher.Fetch(ctx, urlStr)
	var fetchErr *fetch.Error
	if err == nil || !errors.As(err, &fetchErr) || !fetchErr.Retryable {
		return result, err
	}

	if verbose {
		log.Printf("[VERBOSE] Retrying %s in %s: %v", urlStr, retryDelay, err)
	}
	timer := time.NewTimer(retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, err
	case <-timer.C:
	}
	return fetcher.Fetch(ctx, urlStr)
}

// HTMLToMarkdown isolates the posting body with the platform's selectors and converts it
// to Markdown, so headings and bullet lists survive for the text parser.
// Falls back to plain extracted text when conversion fails.
func HTMLToMarkdown(html string, platform fetch.Platform) (string, error) {
	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	inner, err := fetch.ExtractMainHTML(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", err
	}

	markdown, err := htmltomarkdown.ConvertString(inner)
	if err != nil {
		return fetch.ExtractMainText(html, contentSelectors, noiseSelectors...)
	}
	return markdown, nil
}

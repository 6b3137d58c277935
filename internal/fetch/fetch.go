// Package fetch retrieves job posting pages over HTTP and reduces them to readable text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeCLI/1.0)"

// DefaultRequestsPerSecond caps outbound requests when a Client is built without a rate.
const DefaultRequestsPerSecond = 2.0

// maxBodyBytes guards against unbounded job pages.
const maxBodyBytes = 5 << 20

// Result holds the raw and processed content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL       string
	Message   string
	Cause     error
	Retryable bool
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// RequestsPerSecond limits a Client's outbound rate. Zero disables limiting.
	RequestsPerSecond float64
	Burst             int
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:           DefaultTimeout,
		UserAgent:         DefaultUserAgent,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Burst:             1,
	}
}

// Client fetches URLs with a shared HTTP client and rate limiter.
// It is safe for concurrent use.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
	opts    Options
}

// NewClient builds a Client from opts. A nil opts uses DefaultOptions.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}

	c := &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
	}
	if o.RequestsPerSecond > 0 {
		burst := o.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(o.RequestsPerSecond), burst)
	}
	return c
}

// Get retrieves HTML content from a URL, waiting on the rate limiter first.
// On a non-200 response the Result is still returned alongside the error.
func (c *Client) Get(ctx context.Context, urlStr string) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{
				URL:     urlStr,
				Message: "rate limiter wait cancelled",
				Cause:   err,
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", c.opts.UserAgent)
	for key, value := range c.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{
			URL:       urlStr,
			Message:   "HTTP request failed",
			Cause:     err,
			Retryable: true,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{
			URL:       urlStr,
			Message:   "failed to read response body",
			Cause:     err,
			Retryable: true,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:       urlStr,
			Message:   fmt.Sprintf("HTTP status %d", resp.StatusCode),
			Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	return result, nil
}

// URL retrieves HTML content from a URL with a one-off client.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	// a single request never needs to wait
	o.RequestsPerSecond = 0
	return NewClient(&o).Get(ctx, urlStr)
}

// ExtractMainText parses HTML and returns the main body text.
// It removes noise elements using noiseSelectors, then finds content using contentSelectors.
// If no content selectors match, it falls back to the body element.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	sel, err := mainSelection(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", err
	}
	return cleanWhitespace(sel.Text()), nil
}

// ExtractMainHTML is ExtractMainText but returns the inner HTML of the chosen node.
func ExtractMainHTML(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	sel, err := mainSelection(html, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", err
	}
	inner, err := sel.Html()
	if err != nil {
		return "", fmt.Errorf("failed to serialize HTML: %w", err)
	}
	return inner, nil
}

func mainSelection(html string, contentSelectors []string, noiseSelectors ...string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	if len(noiseSelectors) > 0 {
		if noiseSelector := strings.Join(noiseSelectors, ", "); noiseSelector != "" {
			doc.Find(noiseSelector).Remove()
		}
	}

	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			return selection.First(), nil
		}
	}
	return doc.Find("body"), nil
}

// DefaultTextSelectors returns standard selectors for general web content.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// JobPostingSelectors returns selectors optimized for job board pages.
func JobPostingSelectors() []string {
	return []string{
		".job-description",
		".job-content",
		"#job-description",
		"#job-content",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}
}

// cleanWhitespace trims every line and drops blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

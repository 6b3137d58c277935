package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-cli/internal/browser"
)

// MinContentLength is the minimum extracted text length to consider an HTTP fetch successful.
// Anything shorter is likely a JavaScript-rendered page.
const MinContentLength = 500

// settleDelay gives client-side rendering time to populate the DOM.
const settleDelay = 3 * time.Second

// ShouldUseBrowser reports whether extracted text is too short to trust.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in headless Chrome and returns the rendered HTML.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[VERBOSE] Rendering %s in headless browser", url)
	}

	browserCtx, cancel := browser.NewContext(ctx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[VERBOSE] Rendered HTML: %d bytes", len(html))
	}
	return html, nil
}

// BrowserSimple renders with browser.DefaultTimeout.
func BrowserSimple(ctx context.Context, url string, verbose bool) (string, error) {
	return WithBrowser(ctx, url, browser.DefaultTimeout, verbose)
}

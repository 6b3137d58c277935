// Package browser drives a headless Chrome instance for page rendering and PDF output.
package browser

import (
	"context"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single browser session
const DefaultTimeout = 30 * time.Second

// executableNames are the binaries chromedp can drive
var executableNames = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

// Available reports whether a Chrome or Chromium binary is on PATH
func Available() bool {
	for _, name := range executableNames {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}

// NewContext starts a headless browser and returns a context bound to it.
// Calling cancel shuts the browser down. A timeout of zero means DefaultTimeout.
func NewContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)

	return timeoutCtx, func() {
		cancelTimeout()
		cancelBrowser()
		cancelAlloc()
	}
}

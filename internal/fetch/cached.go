package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched page stays fresh.
const DefaultCacheTTL = 15 * time.Minute

// CachedFetcher wraps a Client with an in-memory, TTL-bounded page cache.
// Batch runs often list the same posting more than once; this keeps them to one request.
type CachedFetcher struct {
	client    *Client
	cacheTTL  time.Duration
	skipCache bool
	now       func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	result    Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheTTL: DefaultCacheTTL,
		Options:  DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	ttl := config.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		client:    NewClient(config.Options),
		cacheTTL:  ttl,
		skipCache: config.SkipCache,
		now:       time.Now,
		entries:   make(map[string]cacheEntry),
	}
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	FetchedAt time.Time
}

// Fetch retrieves a URL, serving it from cache while within TTL.
// Text is populated with the job-posting extraction of the page.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if entry, ok := f.lookup(urlStr); ok {
			res := entry.result
			return &CachedResult{Result: &res, FromCache: true, FetchedAt: entry.fetchedAt}, nil
		}
	}

	result, err := f.client.Get(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	platform := DetectPlatform(urlStr)
	text, _ := ExtractMainText(result.HTML, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	result.Text = text

	fetchedAt := f.now()
	if !f.skipCache {
		f.mu.Lock()
		f.entries[urlStr] = cacheEntry{result: *result, fetchedAt: fetchedAt}
		f.mu.Unlock()
	}

	return &CachedResult{Result: result, FetchedAt: fetchedAt}, nil
}

func (f *CachedFetcher) lookup(urlStr string) (cacheEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[urlStr]
	if !ok {
		return cacheEntry{}, false
	}
	if f.now().Sub(entry.fetchedAt) > f.cacheTTL {
		delete(f.entries, urlStr)
		return cacheEntry{}, false
	}
	return entry, true
}

// InvalidateCache drops a cached page, forcing a re-fetch on next request.
func (f *CachedFetcher) InvalidateCache(urlStr string) {
	f.mu.Lock()
	delete(f.entries, urlStr)
	f.mu.Unlock()
}

// Len returns the number of cached pages, stale ones included.
func (f *CachedFetcher) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

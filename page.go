package linknote

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page at the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// ExtractResult holds the content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the readable main text with boilerplate removed.
	Text string
}

// Extractor extracts the title and readable text from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the page title and main text.
	Extract(html string) (*ExtractResult, error)
}

// MultiExtractor tries extractors in order and returns the first result
// that carries any usable content. Extraction libraries differ in which
// pages they can handle, so article extractors come first and the metadata
// extractor serves as the last resort.
type MultiExtractor []Extractor

var _ Extractor = (MultiExtractor)(nil)

// Extract returns the first usable extraction result. It returns the last
// error if every extractor failed.
func (m MultiExtractor) Extract(html string) (*ExtractResult, error) {
	var lastErr error
	for _, e := range m {
		res, err := e.Extract(html)
		if err != nil {
			lastErr = err
			continue
		}
		if res.Title != "" || res.Text != "" {
			return res, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, Errorf(EINTERNAL, "no extractor produced content")
}

// DomainLimiter rate limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}

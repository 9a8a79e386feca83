// Package readability provides a go-readability based implementation of
// linknote.Extractor, used as a fallback for pages trafilatura rejects.
package readability

import (
	"strings"

	"github.com/fwojciec/linknote"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements linknote.Extractor at compile time.
var _ linknote.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the title and readable text
// from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main text.
func (e *Extractor) Extract(rawHTML string) (*linknote.ExtractResult, error) {
	if rawHTML == "" {
		return nil, linknote.Errorf(linknote.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &linknote.ExtractResult{
		Title: article.Title,
		Text:  strings.TrimSpace(article.TextContent),
	}, nil
}

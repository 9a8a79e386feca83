// Package trafilatura provides a go-trafilatura based implementation of
// linknote.Extractor.
package trafilatura

import (
	"errors"
	"strings"

	"github.com/fwojciec/linknote"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements linknote.Extractor at compile time.
var _ linknote.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the title and readable text
// from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main text.
func (e *Extractor) Extract(rawHTML string) (*linknote.ExtractResult, error) {
	if rawHTML == "" {
		return nil, errors.New("empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &linknote.ExtractResult{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}

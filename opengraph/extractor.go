// Package opengraph provides a metadata-based implementation of
// linknote.Extractor. It reads Open Graph tags for the title and falls
// back to the visible body text, which makes it the last resort for pages
// the article extractors reject (t.me embeds, sparse landing pages).
package opengraph

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/fwojciec/linknote"
)

// Ensure Extractor implements linknote.Extractor at compile time.
var _ linknote.Extractor = (*Extractor)(nil)

// Extractor extracts the title from Open Graph metadata and the text from
// the page body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and body text.
func (e *Extractor) Extract(rawHTML string) (*linknote.ExtractResult, error) {
	if rawHTML == "" {
		return nil, linknote.Errorf(linknote.EINVALID, "empty HTML input")
	}

	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(rawHTML)); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	title := og.Title
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	text := og.Description
	if body := collapseWhitespace(doc.Find("body").Text()); body != "" {
		if text != "" {
			text += "\n"
		}
		text += body
	}

	return &linknote.ExtractResult{
		Title: title,
		Text:  text,
	}, nil
}

// collapseWhitespace joins the text into single-space separated words so
// that deeply nested markup doesn't produce runs of blank lines.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

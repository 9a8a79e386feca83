package capture

import (
	"context"
	"log/slog"

	"github.com/fwojciec/linknote"
)

var _ linknote.InfoFetcher = (*Generic)(nil)

// Generic captures any URL by downloading the page, extracting its title
// and text, and analyzing the text. It is the terminal fallback of a
// fetcher chain.
//
// All internal failures are contained: a download or extraction failure
// degrades to a placeholder record, an analysis failure keeps the
// page-extracted title with empty tags and summary. The chain only ever
// sees a valid result from this fetcher, never an error.
type Generic struct {
	Fetcher   linknote.Fetcher
	Extractor linknote.Extractor
	Analyzer  linknote.TextAnalyzer
	Logger    *slog.Logger
}

// GetInfo captures the URL. It never returns nil: Generic recognizes
// every URL.
func (g *Generic) GetInfo(ctx context.Context, url string) (*linknote.LinkInfo, error) {
	html, err := g.Fetcher.Fetch(ctx, url)
	if err != nil {
		g.Logger.Error("page download failed", "url", url, "err", err)
		return linknote.PlaceholderLinkInfo(url), nil
	}

	res, err := g.Extractor.Extract(html)
	if err != nil {
		g.Logger.Error("content extraction failed", "url", url, "err", err)
		return linknote.PlaceholderLinkInfo(url), nil
	}

	textInfo, err := g.Analyzer.Analyze(ctx, res.Text)
	if err != nil {
		g.Logger.Error("text analysis failed", "url", url, "err", err)
		textInfo = linknote.EmptyTextInfo()
	}

	return &linknote.LinkInfo{
		Title:    res.Title,
		URL:      url,
		Tags:     textInfo.Tags,
		Summary:  textInfo.Summary,
		Keywords: textInfo.Keywords,
	}, nil
}

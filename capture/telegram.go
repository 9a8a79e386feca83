package capture

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/linknote"
)

// TelegramURLPrefix recognizes t.me message links.
const TelegramURLPrefix = "https://t.me/"

var _ linknote.InfoFetcher = (*Telegram)(nil)

// Telegram captures t.me message links. Retrieval works like Generic, but
// the title comes from the analyzer: t.me embed pages carry the channel
// name as their metadata title, which makes a useless note title.
type Telegram struct {
	Fetcher   linknote.Fetcher
	Extractor linknote.Extractor
	Analyzer  linknote.TextAnalyzer
	Logger    *slog.Logger
}

// GetInfo captures the URL, or returns nil if it is not a t.me link. The
// prefix check happens before any network call.
func (t *Telegram) GetInfo(ctx context.Context, url string) (*linknote.LinkInfo, error) {
	if !strings.HasPrefix(url, TelegramURLPrefix) {
		return nil, nil
	}

	html, err := t.Fetcher.Fetch(ctx, url)
	if err != nil {
		t.Logger.Error("t.me page download failed", "url", url, "err", err)
		return linknote.PlaceholderLinkInfo(url), nil
	}

	res, err := t.Extractor.Extract(html)
	if err != nil {
		t.Logger.Error("t.me content extraction failed", "url", url, "err", err)
		return linknote.PlaceholderLinkInfo(url), nil
	}

	textInfo, err := t.Analyzer.Analyze(ctx, res.Text)
	if err != nil {
		t.Logger.Error("t.me text analysis failed", "url", url, "err", err)
		textInfo = linknote.EmptyTextInfo()
	}

	title := textInfo.Title
	if title == "" {
		title = res.Title
	}

	return &linknote.LinkInfo{
		Title:    title,
		URL:      url,
		Tags:     textInfo.Tags,
		Summary:  textInfo.Summary,
		Keywords: textInfo.Keywords,
	}, nil
}

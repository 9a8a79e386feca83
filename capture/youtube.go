package capture

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/linknote"
)

var _ linknote.InfoFetcher = (*YouTube)(nil)

// YouTube captures YouTube video links through the platform's data API.
// Title and summary come from the API; tags and keywords come from
// analyzing the concatenated title and description.
//
// Unlike Generic, API and analyzer errors are not contained here: they
// propagate to the capture handler, which degrades to a placeholder.
type YouTube struct {
	Videos   linknote.VideoService
	Analyzer linknote.TextAnalyzer
}

// GetInfo captures the URL, or returns nil if it is not a YouTube link.
func (y *YouTube) GetInfo(ctx context.Context, rawURL string) (*linknote.LinkInfo, error) {
	id := VideoID(rawURL)
	if id == "" {
		return nil, nil
	}

	video, err := y.Videos.Video(ctx, id)
	if err != nil {
		return nil, err
	}

	textInfo, err := y.Analyzer.Analyze(ctx, video.Title+"\n"+video.Description)
	if err != nil {
		return nil, err
	}

	return &linknote.LinkInfo{
		Title:    video.Title,
		URL:      rawURL,
		Tags:     textInfo.Tags,
		Summary:  video.Description,
		Keywords: textInfo.Keywords,
	}, nil
}

// VideoID extracts the video ID from a YouTube URL. Returns "" if the URL
// does not point at a YouTube video: this is the recognition predicate
// and must stay cheap and side-effect-free.
func VideoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		return u.Query().Get("v")
	case "youtu.be":
		return strings.TrimPrefix(u.Path, "/")
	}
	return ""
}

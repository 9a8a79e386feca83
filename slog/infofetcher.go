package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linknote"
)

// Ensure LoggingInfoFetcher implements linknote.InfoFetcher.
var _ linknote.InfoFetcher = (*LoggingInfoFetcher)(nil)

// LoggingInfoFetcher wraps an InfoFetcher with capture logging. Declined
// URLs are not logged so that chain dispatch stays quiet.
type LoggingInfoFetcher struct {
	next   linknote.InfoFetcher
	name   string
	logger *slog.Logger
}

// NewLoggingInfoFetcher creates a new LoggingInfoFetcher. The name
// identifies the wrapped fetcher in log output.
func NewLoggingInfoFetcher(next linknote.InfoFetcher, name string, logger *slog.Logger) *LoggingInfoFetcher {
	return &LoggingInfoFetcher{next: next, name: name, logger: logger}
}

// GetInfo delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingInfoFetcher) GetInfo(ctx context.Context, url string) (*linknote.LinkInfo, error) {
	begin := time.Now()
	info, err := f.next.GetInfo(ctx, url)
	switch {
	case err != nil:
		f.logger.Error("capture",
			"fetcher", f.name,
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	case info != nil:
		f.logger.Info("capture",
			"fetcher", f.name,
			"url", url,
			"title", info.Title,
			"duration", time.Since(begin),
		)
	}
	return info, err
}

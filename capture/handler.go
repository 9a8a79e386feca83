package capture

import (
	"context"
	"log/slog"

	"github.com/fwojciec/linknote"
)

// Handler guarantees exactly one stored record per processed URL. Any
// dispatch failure, including ENOFETCHER and errors raised by individual
// fetchers, degrades to a placeholder record. Store failures are fatal
// and return to the caller unwrapped: the transport layer decides how to
// notify the user.
type Handler struct {
	Fetcher linknote.InfoFetcher
	Store   linknote.InfoStore
	Logger  *slog.Logger
}

// Handle captures the URL and forwards exactly one record to the store.
func (h *Handler) Handle(ctx context.Context, url string) error {
	info, err := h.Fetcher.GetInfo(ctx, url)
	if err != nil {
		h.Logger.Error("link capture failed",
			"url", url,
			"code", linknote.ErrorCode(err),
			"err", err,
		)
		info = linknote.PlaceholderLinkInfo(url)
	}

	return h.Store.CreatePage(ctx, info)
}

package capture

import (
	"context"

	"github.com/fwojciec/linknote"
)

var _ linknote.InfoFetcher = (Chain)(nil)

// Chain dispatches a URL to an ordered sequence of fetchers and returns
// the first non-nil result. Order is a configuration decision: more
// specific fetchers (t.me links, YouTube links) must precede the generic
// fallback or they will never be reached.
type Chain []linknote.InfoFetcher

// GetInfo tries each fetcher in order, short-circuiting on the first
// non-nil result. A fetcher error propagates immediately; only a nil
// result means "try the next fetcher". Fails with ENOFETCHER, carrying
// the URL, when no fetcher recognized it.
func (c Chain) GetInfo(ctx context.Context, url string) (*linknote.LinkInfo, error) {
	for _, fetcher := range c {
		info, err := fetcher.GetInfo(ctx, url)
		if err != nil {
			return nil, err
		}
		if info != nil {
			return info, nil
		}
	}
	return nil, linknote.Errorf(linknote.ENOFETCHER, "no fetcher recognized URL %q", url)
}

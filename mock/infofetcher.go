package mock

import (
	"context"

	"github.com/fwojciec/linknote"
)

var _ linknote.InfoFetcher = (*InfoFetcher)(nil)

// InfoFetcher is a mock implementation of linknote.InfoFetcher.
type InfoFetcher struct {
	GetInfoFn func(ctx context.Context, url string) (*linknote.LinkInfo, error)

	// GetInfoInvoked records whether GetInfo was called.
	GetInfoInvoked bool
}

func (f *InfoFetcher) GetInfo(ctx context.Context, url string) (*linknote.LinkInfo, error) {
	f.GetInfoInvoked = true
	return f.GetInfoFn(ctx, url)
}

package mock

import (
	"context"

	"github.com/fwojciec/linknote"
)

var _ linknote.InfoStore = (*InfoStore)(nil)

// InfoStore is a mock implementation of linknote.InfoStore.
type InfoStore struct {
	CreatePageFn func(ctx context.Context, info *linknote.LinkInfo) error
}

func (s *InfoStore) CreatePage(ctx context.Context, info *linknote.LinkInfo) error {
	return s.CreatePageFn(ctx, info)
}

var _ linknote.LinkService = (*LinkService)(nil)

// LinkService is a mock implementation of linknote.LinkService.
type LinkService struct {
	CreatePageFn func(ctx context.Context, info *linknote.LinkInfo) error
	FindLinksFn  func(ctx context.Context, filter linknote.LinkFilter) ([]*linknote.Link, error)
}

func (s *LinkService) CreatePage(ctx context.Context, info *linknote.LinkInfo) error {
	return s.CreatePageFn(ctx, info)
}

func (s *LinkService) FindLinks(ctx context.Context, filter linknote.LinkFilter) ([]*linknote.Link, error) {
	return s.FindLinksFn(ctx, filter)
}

package mock

import (
	"context"

	"github.com/fwojciec/linknote"
)

var _ linknote.VideoService = (*VideoService)(nil)

// VideoService is a mock implementation of linknote.VideoService.
type VideoService struct {
	VideoFn func(ctx context.Context, id string) (*linknote.Video, error)
}

func (s *VideoService) Video(ctx context.Context, id string) (*linknote.Video, error) {
	return s.VideoFn(ctx, id)
}

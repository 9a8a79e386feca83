// Package youtube provides a YouTube Data API based implementation of
// linknote.VideoService.
package youtube

import (
	"context"

	"github.com/fwojciec/linknote"
	"google.golang.org/api/youtube/v3"
)

// Ensure VideoService implements linknote.VideoService at compile time.
var _ linknote.VideoService = (*VideoService)(nil)

// VideoService looks up video metadata through the YouTube Data API.
type VideoService struct {
	svc *youtube.Service
}

// NewVideoService creates a new VideoService.
func NewVideoService(svc *youtube.Service) *VideoService {
	return &VideoService{svc: svc}
}

// Video returns the title and description for a video ID.
// Returns ENOTFOUND if the video does not exist.
func (s *VideoService) Video(ctx context.Context, id string) (*linknote.Video, error) {
	if id == "" {
		return nil, linknote.Errorf(linknote.EINVALID, "video ID required")
	}

	resp, err := s.svc.Videos.List([]string{"snippet"}).Id(id).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, linknote.Errorf(linknote.ENOTFOUND, "video %q not found", id)
	}

	snippet := resp.Items[0].Snippet
	return &linknote.Video{
		Title:       snippet.Title,
		Description: snippet.Description,
	}, nil
}

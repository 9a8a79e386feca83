package linknote

import "context"

// Video holds the metadata of a video platform entry.
type Video struct {
	Title       string
	Description string
}

// VideoService looks up video metadata through a platform API.
type VideoService interface {
	// Video returns the title and description for a platform-native video
	// ID. Returns ENOTFOUND if the video does not exist.
	Video(ctx context.Context, id string) (*Video, error)
}

package linknote

import (
	"context"
	"time"
)

// LinkInfo is the final captured record for a single URL. It is produced
// exactly once per inbound message and is immutable after construction.
type LinkInfo struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// Validate returns an error if the record contains invalid fields.
func (i *LinkInfo) Validate() error {
	if i.URL == "" {
		return Errorf(EINVALID, "link URL required")
	}
	return nil
}

// PlaceholderLinkInfo returns the degraded record substituted when the
// capture pipeline fails after URL extraction succeeded. It preserves at
// least the URL.
func PlaceholderLinkInfo(url string) *LinkInfo {
	return &LinkInfo{
		Title:    "N/A",
		URL:      url,
		Tags:     []string{},
		Summary:  "",
		Keywords: []string{},
	}
}

// InfoFetcher is a strategy that, given a URL, either declines or produces
// a capture result.
type InfoFetcher interface {
	// GetInfo returns the captured record for the URL, or (nil, nil) if
	// the fetcher does not recognize the URL. A non-nil error means the
	// fetcher recognized the URL but its downstream service failed.
	//
	// Recognition must be cheap and side-effect-free; network calls happen
	// only after recognition succeeds.
	GetInfo(ctx context.Context, url string) (*LinkInfo, error)
}

// InfoStore persists captured records.
type InfoStore interface {
	// CreatePage stores the record as a durable note. Store failures are
	// fatal to the request and surface to the caller unwrapped.
	CreatePage(ctx context.Context, info *LinkInfo) error
}

// MultiStore fans a record out to several stores in order. The first
// failing store aborts the write.
type MultiStore []InfoStore

var _ InfoStore = (MultiStore)(nil)

// CreatePage stores the record in every underlying store.
func (m MultiStore) CreatePage(ctx context.Context, info *LinkInfo) error {
	for _, s := range m {
		if err := s.CreatePage(ctx, info); err != nil {
			return err
		}
	}
	return nil
}

// Link is a locally archived capture record.
type Link struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Tags       []string  `json:"tags"`
	Summary    string    `json:"summary"`
	Keywords   []string  `json:"keywords"`
	URLHash    string    `json:"urlHash"`
	CapturedAt time.Time `json:"capturedAt"`
}

// LinkFilter represents a filter for FindLinks.
type LinkFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// LinkService manages the local archive of captured links.
type LinkService interface {
	InfoStore

	// FindLinks retrieves archived links matching the filter, most recent
	// first.
	FindLinks(ctx context.Context, filter LinkFilter) ([]*Link, error)
}

package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/linknote"
	"github.com/google/uuid"
)

// Ensure LinkService implements the interface at compile time.
var _ linknote.LinkService = (*LinkService)(nil)

// LinkService is a SQLite implementation of linknote.LinkService. It keeps
// a local append-only archive of every captured record alongside whatever
// remote store the pipeline writes to.
type LinkService struct {
	db *DB
}

// NewLinkService creates a new LinkService.
func NewLinkService(db *DB) *LinkService {
	return &LinkService{db: db}
}

// CreatePage archives a captured record. The ID, URL hash and capture
// timestamp are assigned here.
func (s *LinkService) CreatePage(ctx context.Context, info *linknote.LinkInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	tags, err := marshalStrings(info.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	keywords, err := marshalStrings(info.Keywords)
	if err != nil {
		return fmt.Errorf("failed to encode keywords: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO links (id, title, url, tags, summary, keywords, url_hash, captured_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		info.Title,
		info.URL,
		tags,
		info.Summary,
		keywords,
		hashURL(info.URL),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

// FindLinks retrieves archived links matching the filter, most recent first.
func (s *LinkService) FindLinks(ctx context.Context, filter linknote.LinkFilter) ([]*linknote.Link, error) {
	var query strings.Builder
	query.WriteString(`
		SELECT id, title, url, tags, summary, keywords, url_hash, captured_at
		FROM links
		WHERE 1=1`)

	var args []any
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY captured_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []*linknote.Link
	for rows.Next() {
		link, err := scanLink(rows.Scan)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate links: %w", err)
	}
	return links, nil
}

// scanLink scans a single link row using the provided scan function.
func scanLink(scan func(dest ...any) error) (*linknote.Link, error) {
	var link linknote.Link
	var tags, keywords, capturedAt string

	if err := scan(
		&link.ID,
		&link.Title,
		&link.URL,
		&tags,
		&link.Summary,
		&keywords,
		&link.URLHash,
		&capturedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan link: %w", err)
	}

	var err error
	if link.Tags, err = unmarshalStrings(tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	if link.Keywords, err = unmarshalStrings(keywords); err != nil {
		return nil, fmt.Errorf("failed to decode keywords: %w", err)
	}
	if link.CapturedAt, err = parseRFC3339(capturedAt, "captured_at"); err != nil {
		return nil, err
	}
	return &link, nil
}

// hashURL returns a stable hexadecimal digest of the URL, used to spot
// repeat captures of the same address without comparing full strings.
func hashURL(url string) string {
	return strconv.FormatUint(xxhash.Sum64String(url), 16)
}

func marshalStrings(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalStrings(value string) ([]string, error) {
	if value == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(value), &values); err != nil {
		return nil, err
	}
	return values, nil
}

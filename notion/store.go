// Package notion provides a Notion-backed implementation of
// linknote.InfoStore. Captured links become pages in a Notion database.
package notion

import (
	"context"
	"strings"

	"github.com/fwojciec/linknote"
	"github.com/jomei/notionapi"
)

// Ensure Store implements linknote.InfoStore at compile time.
var _ linknote.InfoStore = (*Store)(nil)

// Store persists captured links as pages in a Notion database. The
// database is expected to carry Name (title), URL, Tags (multi-select)
// and List (select) properties.
type Store struct {
	client     *notionapi.Client
	databaseID string
}

// NewStore creates a new Store writing to the given database.
func NewStore(client *notionapi.Client, databaseID string) *Store {
	return &Store{client: client, databaseID: databaseID}
}

// CreatePage stores the record as a new page in the database. Notion API
// errors surface unchanged; the capture pipeline treats them as fatal.
func (s *Store) CreatePage(ctx context.Context, info *linknote.LinkInfo) error {
	if err := info.Validate(); err != nil {
		return err
	}

	_, err := s.client.Page.Create(ctx, BuildPageRequest(s.databaseID, info))
	return err
}

// BuildPageRequest builds the page creation request for a captured link.
// The summary and keywords go into the page body as paragraph blocks, the
// rest into database properties; new pages land in the Inbox list.
func BuildPageRequest(databaseID string, info *linknote.LinkInfo) *notionapi.PageCreateRequest {
	options := make([]notionapi.Option, 0, len(info.Tags))
	for _, tag := range info.Tags {
		options = append(options, notionapi.Option{Name: tag})
	}

	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: notionapi.Properties{
			"Name": notionapi.TitleProperty{
				Title: []notionapi.RichText{{Text: &notionapi.Text{Content: info.Title}}},
			},
			"URL": notionapi.URLProperty{
				URL: info.URL,
			},
			"Tags": notionapi.MultiSelectProperty{
				MultiSelect: options,
			},
			"List": notionapi.SelectProperty{
				Select: notionapi.Option{Name: "Inbox"},
			},
		},
		Children: []notionapi.Block{
			paragraph(info.Summary),
			paragraph(strings.Join(info.Keywords, ", ")),
		},
	}
}

func paragraph(text string) notionapi.ParagraphBlock {
	return notionapi.ParagraphBlock{
		BasicBlock: notionapi.BasicBlock{
			Object: notionapi.ObjectTypeBlock,
			Type:   notionapi.BlockTypeParagraph,
		},
		Paragraph: notionapi.Paragraph{
			RichText: []notionapi.RichText{{Text: &notionapi.Text{Content: text}}},
		},
	}
}

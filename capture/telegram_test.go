package capture_test

import (
	"context"
	"testing"

	"github.com/fwojciec/linknote"
	"github.com/fwojciec/linknote/capture"
	"github.com/fwojciec/linknote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegram_GetInfo(t *testing.T) {
	t.Parallel()

	t.Run("declines non-t.me URL without downloading", func(t *testing.T) {
		t.Parallel()

		tg := &capture.Telegram{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				t.Fatal("fetcher should not be called")
				return "", nil
			}},
			Logger: discard(),
		}

		info, err := tg.GetInfo(context.Background(), "http://example.com")

		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("takes title from analysis instead of page metadata", func(t *testing.T) {
		t.Parallel()

		tg := &capture.Telegram{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>post</html>", nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
				return &linknote.ExtractResult{Title: "Some Channel", Text: "post text"}, nil
			}},
			Analyzer: &mock.TextAnalyzer{AnalyzeFn: func(ctx context.Context, text string) (*linknote.TextInfo, error) {
				return &linknote.TextInfo{Title: "Mock Title", Tags: []string{"tag"}, Summary: "summary"}, nil
			}},
			Logger: discard(),
		}

		info, err := tg.GetInfo(context.Background(), "https://t.me/somechat/123")

		require.NoError(t, err)
		assert.Equal(t, &linknote.LinkInfo{
			Title:   "Mock Title",
			URL:     "https://t.me/somechat/123",
			Tags:    []string{"tag"},
			Summary: "summary",
		}, info)
	})

	t.Run("falls back to page title when analysis fails", func(t *testing.T) {
		t.Parallel()

		tg := &capture.Telegram{
			Fetcher: &mock.Fetcher{FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>post</html>", nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
				return &linknote.ExtractResult{Title: "Some Channel", Text: "post text"}, nil
			}},
			Analyzer: &mock.TextAnalyzer{AnalyzeFn: func(ctx context.Context, text string) (*linknote.TextInfo, error) {
				return nil, assert.AnError
			}},
			Logger: discard(),
		}

		info, err := tg.GetInfo(context.Background(), "https://t.me/somechat/123")

		require.NoError(t, err)
		assert.Equal(t, "Some Channel", info.Title)
		assert.Empty(t, info.Tags)
	})
}

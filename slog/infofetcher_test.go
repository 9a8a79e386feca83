package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/linknote"
	"github.com/fwojciec/linknote/mock"
	linkslog "github.com/fwojciec/linknote/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingInfoFetcher_GetInfo(t *testing.T) {
	t.Parallel()

	t.Run("logs successful captures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.InfoFetcher{
			GetInfoFn: func(ctx context.Context, url string) (*linknote.LinkInfo, error) {
				return &linknote.LinkInfo{Title: "Example", URL: url}, nil
			},
		}

		fetcher := linkslog.NewLoggingInfoFetcher(inner, "generic", logger)
		info, err := fetcher.GetInfo(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "Example", info.Title)
		output := buf.String()
		assert.Contains(t, output, "capture")
		assert.Contains(t, output, "fetcher=generic")
		assert.Contains(t, output, "url=https://example.com")
	})

	t.Run("stays quiet when the fetcher declines", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.InfoFetcher{
			GetInfoFn: func(ctx context.Context, url string) (*linknote.LinkInfo, error) {
				return nil, nil
			},
		}

		fetcher := linkslog.NewLoggingInfoFetcher(inner, "video", logger)
		info, err := fetcher.GetInfo(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Nil(t, info)
		assert.Empty(t, buf.String())
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.InfoFetcher{
			GetInfoFn: func(ctx context.Context, url string) (*linknote.LinkInfo, error) {
				return nil, linknote.Errorf(linknote.EINTERNAL, "api down")
			},
		}

		fetcher := linkslog.NewLoggingInfoFetcher(inner, "video", logger)
		_, err := fetcher.GetInfo(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
	})
}

package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/linknote"
	linkyoutube "github.com/fwojciec/linknote/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

func newService(t *testing.T, handler http.HandlerFunc) *linkyoutube.VideoService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := youtube.NewService(context.Background(),
		option.WithAPIKey("test-key"),
		option.WithEndpoint(server.URL),
	)
	require.NoError(t, err)

	return linkyoutube.NewVideoService(svc)
}

func TestVideoService_Video(t *testing.T) {
	t.Parallel()

	t.Run("returns snippet title and description", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "abc123", r.URL.Query().Get("id"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items": [{"snippet": {"title": "Video title", "description": "Video description"}}]}`))
		})

		video, err := svc.Video(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, &linknote.Video{Title: "Video title", Description: "Video description"}, video)
	})

	t.Run("returns ENOTFOUND for unknown video", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items": []}`))
		})

		_, err := svc.Video(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, linknote.ENOTFOUND, linknote.ErrorCode(err))
	})

	t.Run("returns EINVALID for empty ID", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("API should not be called")
		})

		_, err := svc.Video(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, linknote.EINVALID, linknote.ErrorCode(err))
	})

	t.Run("surfaces API errors", func(t *testing.T) {
		t.Parallel()

		svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"code": 403, "message": "quota exceeded"}}`, http.StatusForbidden)
		})

		_, err := svc.Video(context.Background(), "abc123")

		require.Error(t, err)
	})
}

package linknote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/linknote"
	"github.com/fwojciec/linknote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkInfo_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		info := &linknote.LinkInfo{Title: "Example"}

		err := info.Validate()

		require.Error(t, err)
		assert.Equal(t, linknote.EINVALID, linknote.ErrorCode(err))
	})

	t.Run("accepts valid record", func(t *testing.T) {
		t.Parallel()

		info := &linknote.LinkInfo{Title: "Example", URL: "https://example.com"}

		assert.NoError(t, info.Validate())
	})
}

func TestPlaceholderLinkInfo(t *testing.T) {
	t.Parallel()

	info := linknote.PlaceholderLinkInfo("https://example.com")

	assert.Equal(t, "N/A", info.Title)
	assert.Equal(t, "https://example.com", info.URL)
	assert.Empty(t, info.Tags)
	assert.Empty(t, info.Summary)
	assert.Empty(t, info.Keywords)
	assert.NoError(t, info.Validate())
}

func TestMultiStore_CreatePage(t *testing.T) {
	t.Parallel()

	t.Run("writes to every store in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		first := &mock.InfoStore{CreatePageFn: func(ctx context.Context, info *linknote.LinkInfo) error {
			order = append(order, "first")
			return nil
		}}
		second := &mock.InfoStore{CreatePageFn: func(ctx context.Context, info *linknote.LinkInfo) error {
			order = append(order, "second")
			return nil
		}}

		store := linknote.MultiStore{first, second}
		err := store.CreatePage(context.Background(), linknote.PlaceholderLinkInfo("https://example.com"))

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("first failing store aborts the write", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("store down")
		failing := &mock.InfoStore{CreatePageFn: func(ctx context.Context, info *linknote.LinkInfo) error {
			return wantErr
		}}
		neverCalled := &mock.InfoStore{CreatePageFn: func(ctx context.Context, info *linknote.LinkInfo) error {
			t.Fatal("second store should not be called")
			return nil
		}}

		store := linknote.MultiStore{failing, neverCalled}
		err := store.CreatePage(context.Background(), linknote.PlaceholderLinkInfo("https://example.com"))

		assert.ErrorIs(t, err, wantErr)
	})
}

package linknote_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/linknote"
	"github.com/fwojciec/linknote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns first usable result", func(t *testing.T) {
		t.Parallel()

		primary := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			return &linknote.ExtractResult{Title: "Primary", Text: "text"}, nil
		}}
		fallback := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			t.Fatal("fallback should not be called")
			return nil, nil
		}}

		res, err := linknote.MultiExtractor{primary, fallback}.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Primary", res.Title)
	})

	t.Run("falls back past errors and empty results", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			return nil, errors.New("unparseable")
		}}
		empty := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			return &linknote.ExtractResult{}, nil
		}}
		fallback := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			return &linknote.ExtractResult{Title: "Fallback"}, nil
		}}

		res, err := linknote.MultiExtractor{failing, empty, fallback}.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Fallback", res.Title)
	})

	t.Run("returns last error when every extractor fails", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("last error")
		first := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			return nil, errors.New("first error")
		}}
		last := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			return nil, wantErr
		}}

		_, err := linknote.MultiExtractor{first, last}.Extract("<html></html>")

		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("fails when no extractor produced content", func(t *testing.T) {
		t.Parallel()

		empty := &mock.Extractor{ExtractFn: func(html string) (*linknote.ExtractResult, error) {
			return &linknote.ExtractResult{}, nil
		}}

		_, err := linknote.MultiExtractor{empty}.Extract("<html></html>")

		require.Error(t, err)
		assert.Equal(t, linknote.EINTERNAL, linknote.ErrorCode(err))
	})
}

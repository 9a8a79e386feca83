package mock

import (
	"context"

	"github.com/fwojciec/linknote"
)

var _ linknote.TextAnalyzer = (*TextAnalyzer)(nil)

// TextAnalyzer is a mock implementation of linknote.TextAnalyzer.
type TextAnalyzer struct {
	AnalyzeFn func(ctx context.Context, text string) (*linknote.TextInfo, error)
}

func (a *TextAnalyzer) Analyze(ctx context.Context, text string) (*linknote.TextInfo, error) {
	return a.AnalyzeFn(ctx, text)
}

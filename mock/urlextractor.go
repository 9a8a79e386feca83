package mock

import "github.com/fwojciec/linknote"

var _ linknote.URLExtractor = (*URLExtractor)(nil)

// URLExtractor is a mock implementation of linknote.URLExtractor.
type URLExtractor struct {
	ExtractFn func(msg *linknote.Message) string
}

func (e *URLExtractor) Extract(msg *linknote.Message) string {
	return e.ExtractFn(msg)
}

package mock

import "github.com/fwojciec/linknote"

var _ linknote.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of linknote.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*linknote.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*linknote.ExtractResult, error) {
	return e.ExtractFn(html)
}

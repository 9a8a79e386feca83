package linknote

import "context"

// TextInfo is the result of analyzing extracted page text. It is transient
// and consumed immediately by a fetcher to build a LinkInfo.
type TextInfo struct {
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// EmptyTextInfo returns the designated fallback value substituted when
// analysis fails. Nil is reserved for "strategy not applicable".
func EmptyTextInfo() *TextInfo {
	return &TextInfo{
		Title:    "",
		Tags:     []string{},
		Summary:  "",
		Keywords: []string{},
	}
}

// TextAnalyzer produces a structured summary of raw text.
type TextAnalyzer interface {
	// Analyze returns a title, tags, summary and keywords describing the
	// text. It fails on transport errors and on malformed upstream
	// responses (non-JSON or schema-mismatched model output).
	Analyze(ctx context.Context, text string) (*TextInfo, error)
}

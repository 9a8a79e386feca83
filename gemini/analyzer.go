// Package gemini provides a Google Gemini based implementation of
// linknote.TextAnalyzer.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/linknote"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// maxInputRunes bounds the analyzed text. Past a few thousand characters
// the extra input stops improving tags and summaries and only costs
// tokens.
const maxInputRunes = 8000

// Ensure Analyzer implements linknote.TextAnalyzer at compile time.
var _ linknote.TextAnalyzer = (*Analyzer)(nil)

// Analyzer implements linknote.TextAnalyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client, model: defaultModel}
}

// Analyze returns a title, tags, summary and keywords describing the text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*linknote.TextInfo, error) {
	if text == "" {
		return nil, linknote.Errorf(linknote.EINVALID, "text required")
	}

	prompt := BuildUserPrompt(text)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, linknote.Errorf(linknote.EINTERNAL, "gemini returned nil result")
	}

	var info linknote.TextInfo
	if err := json.Unmarshal([]byte(result.Text()), &info); err != nil {
		return nil, linknote.Errorf(linknote.EINTERNAL, "gemini returned malformed JSON: %v", err)
	}

	return &info, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The response schema forces the model to return the TextInfo shape.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "Given a text, produce a title, three main tags, a two to three sentence summary, and a list of keywords describing it. The title must reflect the main idea of the text. Tags must be short, clear keywords or phrases.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"title":    {Type: genai.TypeString},
				"tags":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				"summary":  {Type: genai.TypeString},
				"keywords": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			},
			Required: []string{"title", "tags", "summary", "keywords"},
		},
	}
}

// BuildUserPrompt builds the user prompt containing the text to analyze,
// truncated to the input budget.
func BuildUserPrompt(text string) string {
	return fmt.Sprintf("Text:\n```\n%s\n```", Truncate(text, maxInputRunes))
}

// Truncate trims the text to at most n runes.
func Truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// Package openai provides an OpenAI chat-completions based implementation
// of linknote.TextAnalyzer.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/linknote"
	"github.com/openai/openai-go/v3"
)

const defaultModel = openai.ChatModelGPT4oMini

// maxInputRunes bounds the analyzed text. Without the bound the model
// intermittently returns prose around the JSON instead of plain JSON.
const maxInputRunes = 8000

// Ensure Analyzer implements linknote.TextAnalyzer at compile time.
var _ linknote.TextAnalyzer = (*Analyzer)(nil)

// Analyzer implements linknote.TextAnalyzer using OpenAI chat completions.
type Analyzer struct {
	client openai.Client
	model  string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client openai.Client) *Analyzer {
	return &Analyzer{client: client, model: defaultModel}
}

// Analyze returns a title, tags, summary and keywords describing the text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*linknote.TextInfo, error) {
	if text == "" {
		return nil, linknote.Errorf(linknote.EINVALID, "text required")
	}

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    a.model,
		Messages: BuildMessages(text),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, linknote.Errorf(linknote.EINTERNAL, "openai returned no choices")
	}

	return ParseTextInfo(resp.Choices[0].Message.Content)
}

// BuildMessages builds the completion messages for the text, including a
// one-shot example that anchors the expected JSON shape.
func BuildMessages(text string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage("Given a text, produce a title, three main tags, a two to three sentence summary, and a list of keywords describing it. Tags must be short, clear keywords or phrases. Respond with JSON only, using the keys title, tags, summary and keywords."),
		openai.UserMessage("An architecture decision record (ADR) is the regular recording of decisions made, and rejected, during software development that affect design, tooling and approach, and that answer particular functional or non-functional requirements."),
		openai.AssistantMessage(`{"title": "What is an ADR", "tags": ["adr", "architecture", "software development"], "summary": "The text explains what an architecture decision record is and why teams keep one.", "keywords": ["decision record", "design", "requirements"]}`),
		openai.UserMessage(fmt.Sprintf("Text:\n```\n%s\n```", Truncate(text, maxInputRunes))),
	}
}

// ParseTextInfo parses model output into a TextInfo. Models occasionally
// wrap the JSON in a code fence or use typographic quotes; both are
// tolerated.
func ParseTextInfo(content string) (*linknote.TextInfo, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.NewReplacer("“", `"`, "”", `"`).Replace(cleaned)

	var info linknote.TextInfo
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &info); err != nil {
		return nil, linknote.Errorf(linknote.EINTERNAL, "openai returned malformed JSON: %v", err)
	}

	return &info, nil
}

// Truncate trims the text to at most n runes.
func Truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

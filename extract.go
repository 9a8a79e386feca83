package linknote

import (
	"fmt"
	"regexp"
)

// URLExtractor is a strategy that locates the target URL within an inbound
// message. Returning "" means the strategy does not apply to the message.
type URLExtractor interface {
	Extract(msg *Message) string
}

// URLExtractors tries extractors in order and returns the first non-empty
// result. Order matters: the forward-origin extractor must precede the
// inline-text extractor, because a forwarded message's inline text may
// contain unrelated or no links.
type URLExtractors []URLExtractor

// Extract returns the target URL for the message. It fails with ENOURL,
// carrying the message text, if no strategy produced a URL.
func (e URLExtractors) Extract(msg *Message) (string, error) {
	for _, strategy := range e {
		if url := strategy.Extract(msg); url != "" {
			return url, nil
		}
	}
	return "", Errorf(ENOURL, "no URL found in message %q", msg.Text)
}

var _ URLExtractor = (*ForwardExtractor)(nil)

// ForwardExtractor synthesizes a t.me deep link for forwarded messages.
type ForwardExtractor struct{}

// Extract returns the canonical embed URL of the forwarded message, or ""
// if the message was not forwarded.
func (e *ForwardExtractor) Extract(msg *Message) string {
	if msg.Forward == nil {
		return ""
	}
	return fmt.Sprintf("https://t.me/%s/%d?embed=1&mode=tme", msg.Forward.ChatHandle, msg.Forward.MessageID)
}

var urlPattern = regexp.MustCompile(`https?://\S+`)

var _ URLExtractor = (*TextExtractor)(nil)

// TextExtractor scans the message text for the first URL-shaped substring.
type TextExtractor struct{}

// Extract returns the first http(s) URL in the message text, or "" if the
// text contains none.
func (e *TextExtractor) Extract(msg *Message) string {
	return urlPattern.FindString(msg.Text)
}

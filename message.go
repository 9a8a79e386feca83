package linknote

// Message is the transport-independent view of an inbound chat message.
type Message struct {
	// Text is the inline message text. May be empty.
	Text string

	// Forward identifies the origin of a forwarded message, or nil if the
	// message was not forwarded from a public chat.
	Forward *ForwardOrigin
}

// ForwardOrigin identifies the chat and message a forward came from.
type ForwardOrigin struct {
	ChatHandle string
	MessageID  int
}

// Package telegram provides the Telegram bot transport. It converts
// platform updates into transport-independent messages and drives the
// capture pipeline one message at a time.
package telegram

import (
	"context"
	"log/slog"

	"github.com/fwojciec/linknote"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const welcomeText = `Send me a link (or forward a message containing one) and I will save it to your notes with tags, a summary and keywords.`

// Client is the subset of the Telegram API the bot uses.
type Client interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Ensure the real API client satisfies the interface.
var _ Client = (*tgbotapi.BotAPI)(nil)

// Handler captures a single URL and stores the result.
type Handler interface {
	Handle(ctx context.Context, url string) error
}

// Bot is a long-polling Telegram bot. Updates are processed strictly
// sequentially: the next message is not read until the current one has
// been captured and stored.
type Bot struct {
	client    Client
	extractor linknote.URLExtractors
	handler   Handler
	logger    *slog.Logger
}

// NewBot creates a new Bot.
func NewBot(client Client, extractor linknote.URLExtractors, handler Handler, logger *slog.Logger) *Bot {
	return &Bot{client: client, extractor: extractor, handler: handler, logger: logger}
}

// Run polls for updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	updates := b.client.GetUpdatesChan(cfg)

	go func() {
		<-ctx.Done()
		b.client.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil {
			continue
		}
		b.handleMessage(ctx, update.Message)
	}

	return ctx.Err()
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.reply(msg, welcomeText)
		default:
			b.reply(msg, "I don't know that command. Try /help.")
		}
		return
	}

	b.reply(msg, "Wait a second...")

	url, err := b.extractor.Extract(ToMessage(msg))
	if err != nil {
		b.logger.Info("no URL in message", "err", err)
		b.reply(msg, "I couldn't find a link in that message.")
		return
	}

	if err := b.handler.Handle(ctx, url); err != nil {
		b.logger.Error("failed to store link", "url", url, "err", err)
		b.reply(msg, "Something went wrong, the link was not saved.")
		return
	}

	b.reply(msg, "Done!")
}

func (b *Bot) reply(to *tgbotapi.Message, text string) {
	reply := tgbotapi.NewMessage(to.Chat.ID, text)
	reply.ReplyToMessageID = to.MessageID
	if _, err := b.client.Send(reply); err != nil {
		b.logger.Error("failed to send reply", "err", err)
	}
}

// ToMessage converts a Telegram message to its transport-independent view.
// The forward origin is set only for forwards from public chats, which are
// the only ones addressable by a t.me link.
func ToMessage(msg *tgbotapi.Message) *linknote.Message {
	m := &linknote.Message{Text: msg.Text}
	if msg.ForwardFromChat != nil && msg.ForwardFromChat.UserName != "" && msg.ForwardFromMessageID != 0 {
		m.Forward = &linknote.ForwardOrigin{
			ChatHandle: msg.ForwardFromChat.UserName,
			MessageID:  msg.ForwardFromMessageID,
		}
	}
	return m
}

package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/joseph-ayodele/mowbot/internal/bot"
)

// Listener pumps long-poll updates into the interaction layer. Updates are
// handled sequentially, which is what keeps the one-interaction-per-user
// rule honest without per-user locking downstream.
type Listener struct {
	api         *tgbotapi.BotAPI
	bot         *bot.Bot
	pollTimeout int
	logger      *slog.Logger
}

func NewListener(api *tgbotapi.BotAPI, b *bot.Bot, pollTimeout int, logger *slog.Logger) *Listener {
	if pollTimeout <= 0 {
		pollTimeout = 30
	}
	return &Listener{api: api, bot: b, pollTimeout: pollTimeout, logger: logger}
}

// Run blocks until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = l.pollTimeout
	updates := l.api.GetUpdatesChan(cfg)
	l.logger.Info("update loop started", "poll_timeout_s", l.pollTimeout)

	for {
		select {
		case <-ctx.Done():
			l.api.StopReceivingUpdates()
			l.logger.Info("update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				l.logger.Info("update channel closed")
				return
			}
			l.handle(ctx, update)
		}
	}
}

func (l *Listener) handle(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		cq := update.CallbackQuery
		if cq.Message == nil {
			l.logger.Warn("callback without message", "callback_id", cq.ID)
			return
		}
		l.bot.HandleCallback(ctx, cq.From.ID, cq.Message.Chat.ID, cq.ID, cq.Data)

	case update.Message != nil:
		msg := update.Message
		switch {
		case msg.IsCommand():
			l.bot.HandleCommand(ctx, msg.From.ID, msg.Chat.ID, msg.Command())
		case len(msg.Photo) > 0:
			// the last size is the largest rendition
			l.bot.HandlePhoto(ctx, msg.From.ID, msg.Chat.ID, msg.Photo[len(msg.Photo)-1].FileID)
		case msg.Document != nil && msg.Document.MimeType != "" &&
			(msg.Document.MimeType == "image/jpeg" || msg.Document.MimeType == "image/png" || msg.Document.MimeType == "image/webp"):
			// full-quality uploads arrive as documents
			l.bot.HandlePhoto(ctx, msg.From.ID, msg.Chat.ID, msg.Document.FileID)
		case msg.Text != "":
			l.bot.HandleText(ctx, msg.From.ID, msg.Chat.ID, msg.Text)
		}
	}
}

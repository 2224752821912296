package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/joseph-ayodele/mowbot/internal/bot"
	"github.com/joseph-ayodele/mowbot/internal/common"
)

// Transport adapts the Telegram Bot API to the screen-oriented boundary
// the interaction layer works against.
type Transport struct {
	api    *tgbotapi.BotAPI
	http   *http.Client
	logger *slog.Logger
}

func NewTransport(api *tgbotapi.BotAPI, logger *slog.Logger) *Transport {
	return &Transport{
		api:    api,
		http:   &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

func markup(kb [][]bot.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(kb))
	for _, r := range kb {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(r))
		for _, b := range r {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Token))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// editRefusals are the API errors that mean the target message cannot be
// edited in place: too old, deleted, or the text is byte-identical.
var editRefusals = []string{
	"message is not modified",
	"message to edit not found",
	"message can't be edited",
	"there is no text in the message to edit",
}

func (t *Transport) Edit(_ context.Context, h bot.Handle, s bot.Screen) error {
	msg := tgbotapi.NewEditMessageTextAndMarkup(h.ChatID, h.MessageID, s.Text, markup(s.Keyboard))
	if _, err := t.api.Send(msg); err != nil {
		for _, refusal := range editRefusals {
			if strings.Contains(err.Error(), refusal) {
				return common.ErrRenderConflict
			}
		}
		return err
	}
	return nil
}

func (t *Transport) Send(_ context.Context, chatID int64, s bot.Screen) (bot.Handle, error) {
	msg := tgbotapi.NewMessage(chatID, s.Text)
	if len(s.Keyboard) > 0 {
		msg.ReplyMarkup = markup(s.Keyboard)
	}
	sent, err := t.api.Send(msg)
	if err != nil {
		return bot.Handle{}, err
	}
	return bot.Handle{ChatID: chatID, MessageID: sent.MessageID}, nil
}

func (t *Transport) SendPhoto(_ context.Context, chatID int64, path, caption string, keyboard [][]bot.Button) (bot.Handle, error) {
	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	msg.Caption = caption
	if len(keyboard) > 0 {
		msg.ReplyMarkup = markup(keyboard)
	}
	sent, err := t.api.Send(msg)
	if err != nil {
		return bot.Handle{}, err
	}
	return bot.Handle{ChatID: chatID, MessageID: sent.MessageID}, nil
}

// SendAlbum sends up to ten photos as one media group. Telegram rejects
// single-item groups, so one photo degrades to a plain photo message.
func (t *Transport) SendAlbum(ctx context.Context, chatID int64, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if len(paths) == 1 {
		_, err := t.SendPhoto(ctx, chatID, paths[0], "", nil)
		return err
	}
	media := make([]interface{}, 0, len(paths))
	for _, p := range paths {
		media = append(media, tgbotapi.NewInputMediaPhoto(tgbotapi.FilePath(p)))
	}
	group := tgbotapi.NewMediaGroup(chatID, media)
	if _, err := t.api.SendMediaGroup(group); err != nil {
		return err
	}
	return nil
}

func (t *Transport) Delete(_ context.Context, h bot.Handle) error {
	if _, err := t.api.Request(tgbotapi.NewDeleteMessage(h.ChatID, h.MessageID)); err != nil {
		return err
	}
	return nil
}

func (t *Transport) Toast(_ context.Context, callbackID, text string) error {
	if _, err := t.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return err
	}
	return nil
}

func (t *Transport) Download(ctx context.Context, fileID string) ([]byte, error) {
	file, err := t.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("resolve file: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(t.api.Token), nil)
	if err != nil {
		return nil, err
	}
	resp, err := t.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			t.logger.Warn("download body close failed", "error", err)
		}
	}()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("file download: non-2xx status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

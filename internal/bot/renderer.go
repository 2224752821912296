package bot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/session"
)

// Transport is the chat-surface boundary. Edit must return
// common.ErrRenderConflict when the platform refuses to edit the target
// message in place (expired, deleted, unchanged).
type Transport interface {
	Edit(ctx context.Context, h Handle, s Screen) error
	Send(ctx context.Context, chatID int64, s Screen) (Handle, error)
	SendPhoto(ctx context.Context, chatID int64, path, caption string, keyboard [][]Button) (Handle, error)
	SendAlbum(ctx context.Context, chatID int64, paths []string) error
	Delete(ctx context.Context, h Handle) error
	Toast(ctx context.Context, callbackID, text string) error
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// Renderer replaces the last rendered screen for a session in place. When
// the platform refuses the edit it falls back to sending a new message and
// records the new screen handle.
type Renderer struct {
	transport Transport
	logger    *slog.Logger
}

func NewRenderer(t Transport, logger *slog.Logger) *Renderer {
	return &Renderer{transport: t, logger: logger}
}

func (r *Renderer) Render(ctx context.Context, st *session.State, chatID int64, s Screen) error {
	chat, msg := st.Screen()
	h := Handle{ChatID: chat, MessageID: msg}
	if !h.Zero() && chat == chatID {
		err := r.transport.Edit(ctx, h, s)
		if err == nil {
			return nil
		}
		if !errors.Is(err, common.ErrRenderConflict) {
			return err
		}
		r.logger.Warn("edit refused, resending screen", "chat_id", chatID, "message_id", msg)
	}
	return r.renderNew(ctx, st, chatID, s)
}

// RenderNew always sends the screen as a fresh message, deleting the
// previous one after the send so a single screen stays visible. Used for
// rich content the platform cannot put into an edit (photo messages).
func (r *Renderer) RenderNew(ctx context.Context, st *session.State, chatID int64, s Screen) error {
	chat, msg := st.Screen()
	old := Handle{ChatID: chat, MessageID: msg}
	if err := r.renderNew(ctx, st, chatID, s); err != nil {
		return err
	}
	if !old.Zero() {
		if err := r.transport.Delete(ctx, old); err != nil {
			r.logger.Warn("stale screen delete failed", "chat_id", old.ChatID, "message_id", old.MessageID, "error", err)
		}
	}
	return nil
}

func (r *Renderer) renderNew(ctx context.Context, st *session.State, chatID int64, s Screen) error {
	h, err := r.transport.Send(ctx, chatID, s)
	if err != nil {
		return err
	}
	st.SetScreen(h.ChatID, h.MessageID)
	return nil
}

// RenderPhoto sends a single captioned photo as the new screen, removing
// the previous screen afterwards.
func (r *Renderer) RenderPhoto(ctx context.Context, st *session.State, chatID int64, path, caption string, keyboard [][]Button) error {
	chat, msg := st.Screen()
	old := Handle{ChatID: chat, MessageID: msg}
	h, err := r.transport.SendPhoto(ctx, chatID, path, caption, keyboard)
	if err != nil {
		return err
	}
	st.SetScreen(h.ChatID, h.MessageID)
	if !old.Zero() {
		if err := r.transport.Delete(ctx, old); err != nil {
			r.logger.Warn("stale screen delete failed", "chat_id", old.ChatID, "message_id", old.MessageID, "error", err)
		}
	}
	return nil
}

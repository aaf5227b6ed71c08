package telegram

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			_ = h.send(newPlainMessage(chatID, msgInternalError))
			return nil
		}
		return nil
	}
}

// allowed reports whether updates from chatID are served.
func (h *Handler) allowed(chatID int64) bool {
	if chatID == h.chatID {
		return true
	}
	h.logger.Debug("update from foreign chat ignored", zap.Int64("chat_id", chatID))
	return false
}

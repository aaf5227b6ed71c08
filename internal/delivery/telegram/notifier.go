package telegram

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

// SendReminder posts a practice reminder and removes the previous one.
func (h *Handler) SendReminder(ctx context.Context, payload entities.ReminderPayload) error {
	msg := newMessage(payload.ChatID, buildReminderNotification(payload))
	msg.ReplyMarkup = buildReminderKeyboard()

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	if prev, ok := h.reminderStorage.UpsertAndGetPrev(payload.ChatID, sent.MessageID, time.Now()); ok {
		h.request(tgbotapi.NewDeleteMessage(prev.ChatID, prev.MessageID))
	}

	h.logger.Info("reminder sent",
		zap.Int64("chat_id", payload.ChatID),
		zap.Int("vocabulary_size", payload.VocabularySize),
	)
	return nil
}

// clearReminder deletes the pending reminder once practice starts.
func (h *Handler) clearReminder(chatID int64) {
	if prev, ok := h.reminderStorage.Take(chatID); ok {
		h.request(tgbotapi.NewDeleteMessage(prev.ChatID, prev.MessageID))
	}
}

package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RenderStats renders statistics message with keyboard.
func (h *Handler) RenderStats(ctx context.Context) (string, tgbotapi.InlineKeyboardMarkup, error) {
	stats, err := h.statsService.Get(ctx)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	return formatStats(stats), buildStatsKeyboard(), nil
}

// RenderSettings renders settings message with keyboard.
func (h *Handler) RenderSettings(ctx context.Context) (string, tgbotapi.InlineKeyboardMarkup, error) {
	settings, err := h.settingsService.Get(ctx)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	return formatSettings(settings), buildSettingsKeyboard(settings), nil
}

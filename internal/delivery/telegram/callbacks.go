package telegram

import (
	"context"
	"errors"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	cd := decodeCallback(cb.Data)
	chatID := cb.Message.Chat.ID

	var (
		text string
		kb   *tgbotapi.InlineKeyboardMarkup
		ok   bool
	)

	switch cd.Action {
	case actionAnswer:
		h.handleAnswerCallback(ctx, cb, cd)
		return
	case actionQuiz:
		h.answerCallback(cb, "")
		if cd.param(0) == quizNext {
			_ = h.withErrorHandling(h.handleQuiz())(ctx, chatID)
		}
		return
	case actionStats:
		text, kb, ok = h.handleStatsCallback(ctx)
	case actionSettings:
		text, kb, ok = h.handleSettingsCallback(ctx, cd)
	case actionVocab:
		text, kb, ok = h.handleVocabCallback(ctx, cd)
	case actionReset:
		text, kb, ok = h.handleResetCallback(ctx, cd)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}

	// Remove the user's "clock".
	h.answerCallback(cb, "")

	if !ok {
		return
	}

	edit := newEdit(chatID, cb.Message.MessageID, text)
	if kb != nil {
		edit.ReplyMarkup = kb
	}
	_ = h.send(edit)
}

func (h *Handler) handleAnswerCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) {
	ans, err := parseAnswerCallback(cd)
	if err != nil {
		h.logger.Debug("invalid answer callback", zap.String("data", cd.Raw))
		h.answerCallback(cb, "")
		return
	}

	q, p, ok := h.quiz.Current()
	if !ok || !ans.matches(q) || p.Completed || p.CurrentStage != ans.Stage {
		h.answerCallback(cb, msgStaleQuestion)
		return
	}

	options := q.Options(ans.Stage)
	if ans.Slot >= len(options) {
		h.answerCallback(cb, msgStaleQuestion)
		return
	}

	res, err := h.quiz.SubmitAt(ctx, ans.Stage, options[ans.Slot])
	switch {
	case errors.Is(err, service.ErrAdvancePending):
		h.answerCallback(cb, msgAdvancePending)
		return
	case errors.Is(err, service.ErrNoQuestion), errors.Is(err, service.ErrQuizComplete),
		errors.Is(err, service.ErrStageChanged):
		h.answerCallback(cb, msgStaleQuestion)
		return
	case err != nil:
		h.logger.Error("failed to submit answer", zap.Error(err))
		h.answerCallback(cb, msgInternalError)
		return
	}

	h.answerCallback(cb, res.Feedback)
	h.showResult(res)
}

func (h *Handler) handleStatsCallback(ctx context.Context) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	text, kb, err := h.RenderStats(ctx)
	if err != nil {
		h.logger.Error("failed to render stats", zap.Error(err))
		return "", nil, false
	}
	return text, &kb, true
}

func (h *Handler) handleSettingsCallback(ctx context.Context, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	var err error

	switch cd.param(0) {
	case settingsStages:
		n, convErr := strconv.Atoi(cd.param(1))
		if convErr != nil {
			return "", nil, false
		}
		_, err = h.settingsService.UpdateNumStages(ctx, n)
	case settingsRadius:
		n, convErr := strconv.Atoi(cd.param(1))
		if convErr != nil {
			return "", nil, false
		}
		_, err = h.settingsService.UpdateContextRadius(ctx, n)
	case settingsHard:
		_, err = h.settingsService.ToggleHardPhoneticMode(ctx)
	case settingsMenu:
	default:
		return "", nil, false
	}
	if err != nil {
		h.logger.Warn("failed to update settings", zap.String("data", cd.Raw), zap.Error(err))
		return "", nil, false
	}

	text, kb, err := h.RenderSettings(ctx)
	if err != nil {
		h.logger.Error("failed to render settings", zap.Error(err))
		return "", nil, false
	}
	return text, &kb, true
}

func (h *Handler) handleVocabCallback(ctx context.Context, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	page, err := strconv.Atoi(cd.param(0))
	if err != nil || page < 0 {
		return "", nil, false
	}

	entries, err := h.vocabService.List(ctx)
	if err != nil {
		h.logger.Error("failed to list vocabulary", zap.Error(err))
		return "", nil, false
	}

	text, totalPages := buildVocabPage(entries, page)
	if totalPages == 0 || page >= totalPages {
		h.logger.Debug("vocab page out of range", zap.Int("page", page), zap.Int("total_pages", totalPages))
		return "", nil, false
	}

	return text, buildPageKeyboard(page, totalPages), true
}

func (h *Handler) handleResetCallback(ctx context.Context, cd callbackData) (string, *tgbotapi.InlineKeyboardMarkup, bool) {
	if cd.param(0) != resetConfirm {
		return md(msgResetCancelled), nil, true
	}

	scope := service.ResetScope{Statistics: true}
	if cd.param(1) == resetAll {
		scope = service.ResetScope{Statistics: true, Vocabulary: true, Settings: true}
	}

	if err := h.resetService.Reset(ctx, scope); err != nil {
		h.logger.Error("failed to reset", zap.Error(err))
		return md(msgInternalError), nil, true
	}

	h.logger.Info("state reset",
		zap.Bool("statistics", scope.Statistics),
		zap.Bool("vocabulary", scope.Vocabulary),
		zap.Bool("settings", scope.Settings),
	)
	return md(msgResetDone), nil, true
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/service"
)

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, welcomeMessage()))
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMessage()))
	}
}

// handleQuiz replaces the current question with a new one.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.sendNewQuestion(ctx, chatID)
	}
}

// handleAdd ingests vocabulary lines and a source text separated by a "---" line.
// A source consisting of a single link is fetched first.
func (h *Handler) handleAdd(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		vocab, src, ok := strings.Cut(strings.TrimSpace(args), addSeparator)
		if !ok || strings.TrimSpace(vocab) == "" || strings.TrimSpace(src) == "" {
			return h.send(newPlainMessage(chatID, msgUseAdd))
		}

		src = strings.TrimSpace(src)
		if isLink(src) {
			article, err := h.fetcher.FetchURL(ctx, src)
			if err != nil {
				h.logger.Warn("failed to fetch source", zap.String("url", src), zap.Error(err))
				return h.send(newPlainMessage(chatID, fmt.Sprintf("❌ Could not read %s", src)))
			}
			src = article.Text
		}

		report, err := h.vocabService.Ingest(ctx, vocab, src)
		if errors.Is(err, service.ErrNoVocabulary) || errors.Is(err, service.ErrMissingInput) {
			return h.send(newPlainMessage(chatID, msgUseAdd))
		}
		if err != nil {
			return fmt.Errorf("ingest vocabulary: %w", err)
		}

		return h.send(newMessage(chatID, formatIngestReport(report)))
	}
}

func (h *Handler) handleVocab() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		entries, err := h.vocabService.List(ctx)
		if err != nil {
			return fmt.Errorf("list vocabulary: %w", err)
		}
		if len(entries) == 0 {
			return h.send(newPlainMessage(chatID, msgVocabularyEmpty))
		}

		text, totalPages := buildVocabPage(entries, 0)
		msg := newMessage(chatID, text)
		if kb := buildPageKeyboard(0, totalPages); kb != nil {
			msg.ReplyMarkup = *kb
		}
		return h.send(msg)
	}
}

func (h *Handler) handleStats() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.RenderStats(ctx)
		if err != nil {
			h.logger.Error("failed to render stats", zap.Error(err))
			return h.send(newPlainMessage(chatID, msgStatsUnavailable))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

func (h *Handler) handleSettings() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, kb, err := h.RenderSettings(ctx)
		if err != nil {
			h.logger.Error("failed to render settings", zap.Error(err))
			return h.send(newPlainMessage(chatID, msgSettingsUnavailable))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleReset asks for confirmation. "/reset all" clears everything, otherwise only statistics.
func (h *Handler) handleReset(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		scope, what := resetStats, "statistics"
		if strings.TrimSpace(args) == resetAll {
			scope, what = resetAll, "statistics, vocabulary and settings"
		}

		msg := newMessage(chatID, md(fmt.Sprintf("⚠️ Reset %s?", what)))
		msg.ReplyMarkup = buildResetConfirmKeyboard(scope)
		return h.send(msg)
	}
}

// handleTextAnswer treats plain text as a typed answer to the current stage.
func (h *Handler) handleTextAnswer(text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, p, ok := h.quiz.Current(); !ok || p.Completed {
			return h.send(newPlainMessage(chatID, msgNoActiveQuestion))
		}

		res, err := h.quiz.Submit(ctx, strings.TrimSpace(text))
		switch {
		case errors.Is(err, service.ErrAdvancePending):
			return h.send(newPlainMessage(chatID, msgAdvancePending))
		case errors.Is(err, service.ErrNoQuestion), errors.Is(err, service.ErrQuizComplete):
			return h.send(newPlainMessage(chatID, msgNoActiveQuestion))
		case err != nil:
			return fmt.Errorf("submit answer: %w", err)
		}

		h.showResult(res)
		return nil
	}
}

func isLink(s string) bool {
	return !strings.ContainsAny(s, " \n\t") &&
		(strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://"))
}

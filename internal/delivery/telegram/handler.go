package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/storage"
)

// questionMessage is the chat message showing the current question.
type questionMessage struct {
	chatID     int64
	messageID  int
	questionID string
	feedback   string // last answer feedback shown under the question
}

type Handler struct {
	bot    BotAPI
	chatID int64
	logger *zap.Logger

	quiz            QuizSession
	statsService    StatisticsService
	settingsService SettingsService
	vocabService    VocabularyService
	resetService    ResetService
	fetcher         SourceFetcher
	reminderStorage *storage.ReminderStorage

	mu      sync.Mutex
	current questionMessage
}

func NewHandler(
	bot BotAPI,
	chatID int64,
	logger *zap.Logger,
	quiz QuizSession,
	statsService StatisticsService,
	settingsService SettingsService,
	vocabService VocabularyService,
	resetService ResetService,
	fetcher SourceFetcher,
	reminderStorage *storage.ReminderStorage,
) *Handler {
	h := &Handler{
		bot:             bot,
		chatID:          chatID,
		logger:          logger,
		quiz:            quiz,
		statsService:    statsService,
		settingsService: settingsService,
		vocabService:    vocabService,
		resetService:    resetService,
		fetcher:         fetcher,
		reminderStorage: reminderStorage,
	}
	quiz.OnAdvance(h.onAdvance)
	return h
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started", zap.Int64("chat_id", h.chatID))
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		cb := update.CallbackQuery
		if cb.Message == nil || !h.allowed(cb.Message.Chat.ID) {
			return
		}

		h.logger.Debug("callback received",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
		)
		h.handleCallback(ctx, cb)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	chatID := update.Message.Chat.ID
	if !h.allowed(chatID) {
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", update.Message.Text),
	)

	if update.Message.IsCommand() {
		var fn HandlerFunc
		switch update.Message.Command() {
		case "start":
			fn = h.handleStart()
		case "help":
			fn = h.handleHelp()
		case "quiz":
			fn = h.handleQuiz()
		case "add":
			fn = h.handleAdd(update.Message.CommandArguments())
		case "vocab":
			fn = h.handleVocab()
		case "stats":
			fn = h.handleStats()
		case "settings":
			fn = h.handleSettings()
		case "reset":
			fn = h.handleReset(update.Message.CommandArguments())
		default:
			fn = func(ctx context.Context, chatID int64) error {
				return h.send(newPlainMessage(chatID, msgUnknownCommand))
			}
		}

		_ = h.withErrorHandling(fn)(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.handleTextAnswer(update.Message.Text))(ctx, chatID)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// request performs API calls whose result is not a message, such as deletes.
func (h *Handler) request(c tgbotapi.Chattable) {
	if _, err := h.bot.Request(c); err != nil {
		h.logger.Debug("telegram request failed", zap.Error(err))
	}
}

// answerCallback removes the button spinner, optionally with a toast text.
func (h *Handler) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	h.request(tgbotapi.NewCallback(cb.ID, text))
}

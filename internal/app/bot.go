package app

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/quizzboi/internal/config"
	"github.com/aliskhannn/quizzboi/internal/delivery/telegram"
	"github.com/aliskhannn/quizzboi/internal/service"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

var botCommands = []tgbotapi.BotCommand{
	{Command: "quiz", Description: "Next question"},
	{Command: "add", Description: "Add vocabulary with a source text"},
	{Command: "vocab", Description: "List stored vocabulary"},
	{Command: "stats", Description: "Streaks and accuracy"},
	{Command: "settings", Description: "Quiz settings"},
	{Command: "reset", Description: "Clear statistics"},
	{Command: "help", Description: "Help"},
}

// RunBot serves the configured chat over Telegram until ctx is cancelled.
// The practice reminder runs alongside when enabled.
func RunBot(ctx context.Context, cfg *config.Config, e *Engine, logger *zap.Logger) error {
	if err := cfg.Telegram.Validate(); err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.APIToken)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}
	defer bot.StopReceivingUpdates()

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		logger.Warn("failed to set bot commands", zap.Error(err))
	}

	logger.Info("authorized on account", zap.String("username", bot.Self.UserName))

	handler := telegram.NewHandler(
		bot,
		cfg.Telegram.ChatID,
		logger,
		e.Quiz,
		e.Statistics,
		e.Settings,
		e.Vocabulary,
		e.Reset,
		e.Fetcher,
		storage.NewReminderStorage(),
	)

	var reminders *service.ReminderService
	if cfg.Reminder.Enabled {
		if reminders, err = e.NewReminderService(cfg.Telegram.ChatID); err != nil {
			return err
		}
		reminders.SetNotifier(handler)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return handler.Run(ctx)
	})
	if reminders != nil {
		g.Go(func() error {
			return reminders.Start(ctx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("shutdown signal received")
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

// ReminderService sends a practice nudge to the configured chat on a cron schedule.
type ReminderService struct {
	vocabRepo VocabularyRepository
	statsRepo StatisticsRepository
	notifier  ReminderNotifier
	chatID    int64
	schedule  string
	location  *time.Location
	logger    *zap.Logger
}

// NewReminderService creates a new reminder service.
func NewReminderService(
	vocabRepo VocabularyRepository,
	statsRepo StatisticsRepository,
	chatID int64,
	schedule string,
	location *time.Location,
	logger *zap.Logger,
) *ReminderService {
	if location == nil {
		location = time.Local
	}

	return &ReminderService{
		vocabRepo: vocabRepo,
		statsRepo: statsRepo,
		chatID:    chatID,
		schedule:  schedule,
		location:  location,
		logger:    logger,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.notifier = notifier
}

// Start runs the scheduler until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.location))

	_, err := c.AddFunc(s.schedule, func() {
		s.logger.Info("cron triggered: sending practice reminder")
		if err := s.SendReminder(ctx); err != nil {
			s.logger.Error("failed to send reminder", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("reminder service started",
		zap.String("schedule", s.schedule),
		zap.String("location", s.location.String()),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("reminder service stopped")

	return nil
}

// SendReminder builds the reminder payload and hands it to the notifier.
// Nothing is sent while the vocabulary is empty.
func (s *ReminderService) SendReminder(ctx context.Context) error {
	if s.notifier == nil {
		return fmt.Errorf("notifier not initialized")
	}

	vocab, err := s.vocabRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("get vocabulary: %w", err)
	}
	if len(vocab) == 0 {
		s.logger.Debug("vocabulary empty, reminder skipped")
		return nil
	}

	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	payload := entities.ReminderPayload{
		ChatID:         s.chatID,
		VocabularySize: len(vocab),
		Stats:          entities.NewReminderStats(stats),
	}

	if err := s.notifier.SendReminder(ctx, payload); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	s.logger.Info("reminder sent",
		zap.Int64("chat_id", s.chatID),
		zap.Int("streak", stats.CurrentStreak),
	)

	return nil
}

package service

import (
	"context"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

type VocabularyRepository interface {
	GetAll(ctx context.Context) ([]entities.VocabularyEntry, error)
	Append(ctx context.Context, entries ...entities.VocabularyEntry) error
	Delete(ctx context.Context, primary string) (int, error)
	Clear(ctx context.Context) error
}

type StatisticsRepository interface {
	Get(ctx context.Context) (*entities.StatisticsState, error)
	Save(ctx context.Context, state *entities.StatisticsState) error
	Reset(ctx context.Context) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
	Save(ctx context.Context, s entities.Settings) error
	Reset(ctx context.Context) error
}

// OutcomeRecorder receives every answer outcome.
type OutcomeRecorder interface {
	Record(ctx context.Context, o entities.Outcome) (entities.StreakChange, error)
}

// ReminderNotifier sends practice reminders.
type ReminderNotifier interface {
	SendReminder(ctx context.Context, payload entities.ReminderPayload) error
}

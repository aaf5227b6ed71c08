package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

// StatisticsTracker records answer outcomes and keeps the persisted statistics current.
type StatisticsTracker struct {
	mu     sync.Mutex
	repo   StatisticsRepository
	logger *zap.Logger
}

func NewStatisticsTracker(repo StatisticsRepository, logger *zap.Logger) *StatisticsTracker {
	return &StatisticsTracker{repo: repo, logger: logger}
}

// Record applies an outcome and persists the result. The stored state is only
// overwritten with a fully updated copy.
func (t *StatisticsTracker) Record(ctx context.Context, o entities.Outcome) (entities.StreakChange, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.repo.Get(ctx)
	if err != nil {
		return entities.StreakChange{}, fmt.Errorf("get stats: %w", err)
	}

	next := state.Clone()
	change := next.Record(o)

	if err := t.repo.Save(ctx, next); err != nil {
		return change, fmt.Errorf("save stats: %w", err)
	}

	t.logger.Debug("outcome recorded",
		zap.String("outcome", string(o)),
		zap.Int("streak", next.CurrentStreak),
		zap.Int("last50", next.Last50Percent),
		zap.Int("overall", next.OverallPercent),
	)

	return change, nil
}

// Get returns the current statistics.
func (t *StatisticsTracker) Get(ctx context.Context) (*entities.StatisticsState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, err := t.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return state, nil
}

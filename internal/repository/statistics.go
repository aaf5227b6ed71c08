package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

// StatisticsRepository persists the statistics state.
type StatisticsRepository struct {
	store storage.Store
}

func NewStatisticsRepository(store storage.Store) *StatisticsRepository {
	return &StatisticsRepository{store: store}
}

// Get returns the stored state or an empty one.
func (r *StatisticsRepository) Get(ctx context.Context) (*entities.StatisticsState, error) {
	state := entities.NewStatisticsState()
	if _, err := loadJSON(ctx, r.store, KeyStats, state); err != nil {
		return nil, err
	}
	if state.History == nil {
		state.History = []entities.Outcome{}
	}
	return state, nil
}

// Save overwrites the stored state.
func (r *StatisticsRepository) Save(ctx context.Context, state *entities.StatisticsState) error {
	return saveJSON(ctx, r.store, KeyStats, state)
}

// Reset removes the stored state.
func (r *StatisticsRepository) Reset(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyStats); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}

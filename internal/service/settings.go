package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

type SettingsService struct {
	mu         sync.Mutex
	repository SettingsRepository
}

func NewSettingsService(repository SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

// Get returns the current settings. Missing values fall back to defaults.
func (s *SettingsService) Get(ctx context.Context) (entities.Settings, error) {
	return s.repository.Get(ctx)
}

// Update applies fn to the current settings and stores the result if it is valid.
func (s *SettingsService) Update(ctx context.Context, fn func(*entities.Settings)) (entities.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.repository.Get(ctx)
	if err != nil {
		return entities.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	fn(&settings)
	if err := settings.Validate(); err != nil {
		return entities.Settings{}, err
	}

	if err := s.repository.Save(ctx, settings); err != nil {
		return entities.Settings{}, fmt.Errorf("save settings: %w", err)
	}

	return settings, nil
}

func (s *SettingsService) UpdateNumStages(ctx context.Context, n int) (entities.Settings, error) {
	return s.Update(ctx, func(st *entities.Settings) { st.NumStages = n })
}

func (s *SettingsService) UpdateContextRadius(ctx context.Context, radius int) (entities.Settings, error) {
	return s.Update(ctx, func(st *entities.Settings) { st.ContextRadius = radius })
}

func (s *SettingsService) SetHardPhoneticMode(ctx context.Context, on bool) (entities.Settings, error) {
	return s.Update(ctx, func(st *entities.Settings) { st.HardPhoneticMode = on })
}

func (s *SettingsService) ToggleHardPhoneticMode(ctx context.Context) (entities.Settings, error) {
	return s.Update(ctx, func(st *entities.Settings) { st.HardPhoneticMode = !st.HardPhoneticMode })
}

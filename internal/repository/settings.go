package repository

import (
	"context"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

// SettingsRepository persists quiz settings, one key per value.
type SettingsRepository struct {
	store    storage.Store
	defaults entities.Settings
}

// NewSettingsRepository creates a repository that falls back to defaults for missing keys.
func NewSettingsRepository(store storage.Store, defaults entities.Settings) *SettingsRepository {
	return &SettingsRepository{store: store, defaults: defaults}
}

// Get returns the stored settings with defaults filled in for missing keys.
func (r *SettingsRepository) Get(ctx context.Context) (entities.Settings, error) {
	s := r.defaults

	if _, err := loadJSON(ctx, r.store, KeyNumStages, &s.NumStages); err != nil {
		return entities.Settings{}, err
	}
	if _, err := loadJSON(ctx, r.store, KeyHardPhoneticMode, &s.HardPhoneticMode); err != nil {
		return entities.Settings{}, err
	}
	if _, err := loadJSON(ctx, r.store, KeyContextRadius, &s.ContextRadius); err != nil {
		return entities.Settings{}, err
	}

	return s, nil
}

// Save stores every settings value.
func (r *SettingsRepository) Save(ctx context.Context, s entities.Settings) error {
	if err := saveJSON(ctx, r.store, KeyNumStages, s.NumStages); err != nil {
		return err
	}
	if err := saveJSON(ctx, r.store, KeyHardPhoneticMode, s.HardPhoneticMode); err != nil {
		return err
	}
	return saveJSON(ctx, r.store, KeyContextRadius, s.ContextRadius)
}

// Reset removes the stored values so defaults apply again.
func (r *SettingsRepository) Reset(ctx context.Context) error {
	for _, key := range []string{KeyNumStages, KeyHardPhoneticMode, KeyContextRadius} {
		if err := r.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

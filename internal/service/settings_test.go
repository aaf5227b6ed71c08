package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/repository"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

func TestSettingsServiceUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewSettingsService(repository.NewSettingsRepository(storage.NewMemory(), entities.NewSettings()))

	got, err := svc.UpdateNumStages(ctx, 2)
	if err != nil {
		t.Fatalf("UpdateNumStages: %v", err)
	}
	if got.NumStages != 2 {
		t.Errorf("NumStages = %d", got.NumStages)
	}

	if _, err := svc.UpdateNumStages(ctx, 4); !errors.Is(err, entities.ErrInvalidNumStages) {
		t.Errorf("UpdateNumStages(4) error = %v", err)
	}
	if _, err := svc.UpdateContextRadius(ctx, 0); !errors.Is(err, entities.ErrInvalidContextRadius) {
		t.Errorf("UpdateContextRadius(0) error = %v", err)
	}

	got, err = svc.ToggleHardPhoneticMode(ctx)
	if err != nil || !got.HardPhoneticMode {
		t.Fatalf("ToggleHardPhoneticMode = %+v, %v", got, err)
	}

	stored, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := entities.Settings{NumStages: 2, HardPhoneticMode: true, ContextRadius: entities.DefaultContextRadius}
	if stored != want {
		t.Errorf("stored = %+v, want %+v", stored, want)
	}
}

func TestResetService(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	defaults := entities.NewSettings()

	vocab := repository.NewVocabularyRepository(store)
	stats := repository.NewStatisticsRepository(store)
	settings := repository.NewSettingsRepository(store, defaults)

	_ = vocab.Append(ctx, entities.NewVocabularyEntry("猫", "māo", "cat", []string{"猫"}))
	state := entities.NewStatisticsState()
	state.Record(entities.OutcomeCorrect)
	_ = stats.Save(ctx, state)
	_ = settings.Save(ctx, entities.Settings{NumStages: 1, ContextRadius: 5})

	svc := NewResetService(store, defaults)
	if err := svc.Reset(ctx, ResetScope{Statistics: true}); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if got, _ := stats.Get(ctx); len(got.History) != 0 {
		t.Errorf("history after reset = %v", got.History)
	}
	if got, _ := vocab.GetAll(ctx); len(got) != 1 {
		t.Errorf("vocabulary cleared by statistics reset")
	}

	if err := svc.Reset(ctx, ResetScope{Vocabulary: true, Settings: true}); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got, _ := vocab.GetAll(ctx); len(got) != 0 {
		t.Errorf("vocabulary after reset = %v", got)
	}
	if got, _ := settings.Get(ctx); got != defaults {
		t.Errorf("settings after reset = %+v", got)
	}
}

package service

import (
	"context"
	"fmt"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/repository"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

// ResetScope selects what a reset clears.
type ResetScope struct {
	Statistics bool
	Vocabulary bool
	Settings   bool
}

type ResetService struct {
	tr       storage.Transactor
	defaults entities.Settings
}

func NewResetService(tr storage.Transactor, defaults entities.Settings) *ResetService {
	return &ResetService{
		tr:       tr,
		defaults: defaults,
	}
}

// Reset clears the selected state in a single transaction.
func (s *ResetService) Reset(ctx context.Context, scope ResetScope) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx storage.Store) error {
		if scope.Statistics {
			if err := repository.NewStatisticsRepository(tx).Reset(ctx); err != nil {
				return err
			}
		}

		if scope.Vocabulary {
			if err := repository.NewVocabularyRepository(tx).Clear(ctx); err != nil {
				return err
			}
		}

		if scope.Settings {
			if err := repository.NewSettingsRepository(tx, s.defaults).Reset(ctx); err != nil {
				return fmt.Errorf("reset settings: %w", err)
			}
		}

		return nil
	})
}

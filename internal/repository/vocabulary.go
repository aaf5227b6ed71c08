package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

var ErrEntryNotFound = errors.New("vocabulary entry not found")

// VocabularyRepository persists the vocabulary list under a single key.
type VocabularyRepository struct {
	store storage.Store
}

func NewVocabularyRepository(store storage.Store) *VocabularyRepository {
	return &VocabularyRepository{store: store}
}

// GetAll returns every stored entry in insertion order.
func (r *VocabularyRepository) GetAll(ctx context.Context) ([]entities.VocabularyEntry, error) {
	var entries []entities.VocabularyEntry
	if _, err := loadJSON(ctx, r.store, KeyVocabulary, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Append adds entries after the existing ones.
func (r *VocabularyRepository) Append(ctx context.Context, entries ...entities.VocabularyEntry) error {
	if len(entries) == 0 {
		return nil
	}

	all, err := r.GetAll(ctx)
	if err != nil {
		return err
	}

	return saveJSON(ctx, r.store, KeyVocabulary, append(all, entries...))
}

// Delete removes every entry whose primary term equals primary.
func (r *VocabularyRepository) Delete(ctx context.Context, primary string) (int, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	kept := slices.DeleteFunc(all, func(e entities.VocabularyEntry) bool {
		return e.Primary == primary
	})
	removed := len(all) - len(kept)
	if removed == 0 {
		return 0, fmt.Errorf("delete %q: %w", primary, ErrEntryNotFound)
	}

	if err := saveJSON(ctx, r.store, KeyVocabulary, kept); err != nil {
		return 0, err
	}

	return removed, nil
}

// Clear removes the whole vocabulary.
func (r *VocabularyRepository) Clear(ctx context.Context) error {
	if err := r.store.Remove(ctx, KeyVocabulary); err != nil {
		return fmt.Errorf("clear vocabulary: %w", err)
	}
	return nil
}

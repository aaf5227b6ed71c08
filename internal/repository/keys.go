package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aliskhannn/quizzboi/internal/storage"
)

// Keys of the persisted state.
const (
	KeyVocabulary       = "vocabulary"
	KeyStats            = "stats"
	KeyNumStages        = "numStages"
	KeyHardPhoneticMode = "hardPhoneticMode"
	KeyContextRadius    = "contextRadius"
)

// loadJSON decodes the value under key into dst. It reports false when the key is missing.
func loadJSON(ctx context.Context, s storage.Store, key string, dst any) (bool, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}

	return true, nil
}

func saveJSON(ctx context.Context, s storage.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	return nil
}

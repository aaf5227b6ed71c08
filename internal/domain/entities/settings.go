package entities

import "errors"

var (
	ErrInvalidNumStages     = errors.New("number of stages must be between 1 and 3")
	ErrInvalidContextRadius = errors.New("context radius must be positive")
)

// Default settings values.
const (
	DefaultNumStages     = 3
	DefaultContextRadius = 25
)

// Settings holds quiz preferences. A snapshot is taken for every generated question.
type Settings struct {
	NumStages        int  // active stages per question, 1..3
	HardPhoneticMode bool // use tone variations as phonetic distractors
	ContextRadius    int  // characters kept on each side of a context match
}

// NewSettings creates Settings with default values.
func NewSettings() Settings {
	return Settings{
		NumStages:     DefaultNumStages,
		ContextRadius: DefaultContextRadius,
	}
}

// Validate checks that all values are in range.
func (s Settings) Validate() error {
	if s.NumStages < 1 || s.NumStages > MaxStages {
		return ErrInvalidNumStages
	}
	if s.ContextRadius <= 0 {
		return ErrInvalidContextRadius
	}
	return nil
}

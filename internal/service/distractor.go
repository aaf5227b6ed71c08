package service

import (
	"math/rand"
	"slices"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

const (
	// maxSampleAttempts bounds redraws so small vocabularies cannot loop forever.
	maxSampleAttempts = 20

	// ExhaustedPlaceholder fills a slot when no distinct distractor was found.
	ExhaustedPlaceholder = "…"
)

// DistractorSampler draws wrong answers for a stage.
// It is not safe for concurrent use.
type DistractorSampler struct {
	rng   *rand.Rand
	tones *ToneVariationGenerator
}

func NewDistractorSampler(rng *rand.Rand, tones *ToneVariationGenerator) *DistractorSampler {
	return &DistractorSampler{rng: rng, tones: tones}
}

// Sample returns a value for stage that differs from exclude and from every value in chosen.
// Candidates come from random pool entries, or from tone variations of exclude when hard is
// set, the stage is phonetic and exclude carries a tone mark. When no acceptable candidate
// turns up within maxSampleAttempts draws it returns ExhaustedPlaceholder and false.
func (d *DistractorSampler) Sample(
	stage entities.Stage,
	exclude string,
	chosen []string,
	pool []entities.VocabularyEntry,
	hard bool,
) (string, bool) {
	useTones := hard && stage.Phonetic() && HasTone(exclude)
	if !useTones && len(pool) == 0 {
		return ExhaustedPlaceholder, false
	}

	for range maxSampleAttempts {
		var candidate string
		if useTones {
			v, err := d.tones.Perturb(exclude)
			if err != nil {
				break
			}
			candidate = v
		} else {
			candidate = pool[d.rng.Intn(len(pool))].Field(stage)
		}

		if candidate == exclude || slices.Contains(chosen, candidate) {
			continue
		}

		return candidate, true
	}

	return ExhaustedPlaceholder, false
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

var ErrEmptyVocabulary = errors.New("vocabulary is empty")

// QuestionGenerator builds questions from the stored vocabulary.
type QuestionGenerator struct {
	vocabRepo VocabularyRepository
	extractor *ContextExtractor
	sampler   *DistractorSampler
	logger    *zap.Logger

	mu  sync.Mutex // guards rng, shared with sampler and tone generator
	rng *rand.Rand
}

func NewQuestionGenerator(
	vocabRepo VocabularyRepository,
	extractor *ContextExtractor,
	rng *rand.Rand,
	logger *zap.Logger,
) *QuestionGenerator {
	return &QuestionGenerator{
		vocabRepo: vocabRepo,
		extractor: extractor,
		sampler:   NewDistractorSampler(rng, NewToneVariationGenerator(rng)),
		logger:    logger,
		rng:       rng,
	}
}

// Generate builds a question for the given settings.
//
// Steps:
//  1. Pick a random target entry.
//  2. Blank the target out of one of its random source contexts.
//  3. Fill four slots per active stage with distractors, then put the target value
//     into one random slot.
func (g *QuestionGenerator) Generate(ctx context.Context, settings entities.Settings) (*entities.QuestionData, error) {
	pool, err := g.vocabRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get vocabulary: %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrEmptyVocabulary
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1. Target.
	target := pool[g.rng.Intn(len(pool))]

	q := &entities.QuestionData{
		ID:      uuid.NewString(),
		Target:  target.Term,
		Answers: make(map[entities.Stage][]string, settings.NumStages),
	}

	// 2. Question text.
	if len(target.Sources) > 0 {
		source := target.Sources[g.rng.Intn(len(target.Sources))]
		q.QuestionText = g.extractor.Blank(source, target.Primary)
	} else {
		q.QuestionText = BlankMarker
	}

	hard := settings.HardPhoneticMode
	if hard && settings.NumStages >= int(entities.StageTwo) && !HasTone(target.Secondary) {
		hard = false
		g.warn(q, fmt.Sprintf("%q has %s, hard phonetic mode skipped", target.Secondary, ErrNoTonalCharacters))
	}

	// 3. Answer slots.
	for _, stage := range entities.Stages(settings.NumStages) {
		correct := target.Field(stage)

		options := make([]string, 0, entities.AnswerSlots)
		exhausted := false
		for range entities.AnswerSlots {
			v, ok := g.sampler.Sample(stage, correct, options, pool, hard)
			if !ok {
				exhausted = true
			}
			options = append(options, v)
		}
		options[g.rng.Intn(entities.AnswerSlots)] = correct

		if exhausted {
			g.warn(q, fmt.Sprintf("not enough distinct %s values for distractors", stage))
		}

		q.Answers[stage] = options
	}

	return q, nil
}

func (g *QuestionGenerator) warn(q *entities.QuestionData, msg string) {
	q.Warnings = append(q.Warnings, msg)
	g.logger.Warn("question generation", zap.String("question_id", q.ID), zap.String("warning", msg))
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

var (
	ErrNoQuestion     = errors.New("no question generated")
	ErrQuizComplete   = errors.New("question already complete")
	ErrAdvancePending = errors.New("stage advance pending")
	ErrStageChanged   = errors.New("answer is for a stage no longer awaiting an answer")
)

// DefaultAdvanceDelay leaves time for positive feedback before the next stage.
const DefaultAdvanceDelay = 400 * time.Millisecond

type QuestionSource interface {
	Generate(ctx context.Context, settings entities.Settings) (*entities.QuestionData, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (entities.Settings, error)
}

// SubmitResult describes the effect of a submitted answer.
type SubmitResult struct {
	Correct           bool
	Stage             entities.Stage // stage the answer was checked against
	Completes         bool           // the pending advance finishes the question
	IncorrectAttempts int            // wrong answers so far on this question
	Streak            entities.StreakChange
	Feedback          string // emoji or streak message for the learner
}

// AdvanceEvent is emitted after a delayed stage advance.
type AdvanceEvent struct {
	QuestionID string
	Stage      entities.Stage // stage now awaiting an answer
	Completed  bool
}

// QuizSession is the staged answer state machine for one learner.
type QuizSession struct {
	questions QuestionSource
	settings  SettingsProvider
	recorder  OutcomeRecorder
	scheduler Scheduler
	delay     time.Duration
	logger    *zap.Logger

	mu        sync.Mutex
	question  *entities.QuestionData
	progress  *entities.QuizProgress
	pending   Timer
	token     uint64 // bumped on every Generate so stale callbacks are ignored
	onAdvance func(AdvanceEvent)
}

func NewQuizSession(
	questions QuestionSource,
	settings SettingsProvider,
	recorder OutcomeRecorder,
	scheduler Scheduler,
	delay time.Duration,
	logger *zap.Logger,
) *QuizSession {
	return &QuizSession{
		questions: questions,
		settings:  settings,
		recorder:  recorder,
		scheduler: scheduler,
		delay:     delay,
		logger:    logger,
	}
}

// OnAdvance registers fn to run after each delayed advance. fn runs without the session lock held.
func (s *QuizSession) OnAdvance(fn func(AdvanceEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onAdvance = fn
}

// Generate replaces the current question with a new one at stage one.
// A pending advance of the previous question is cancelled.
func (s *QuizSession) Generate(ctx context.Context) (*entities.QuestionData, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	q, err := s.questions.Generate(ctx, settings)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPending()
	s.token++

	if err != nil {
		s.question, s.progress = nil, nil
		return nil, err
	}

	s.question = q
	s.progress = entities.NewQuizProgress(len(q.Answers))

	return q, nil
}

// Submit checks answer against the current stage.
// A correct answer schedules the advance; a wrong one keeps the stage.
func (s *QuizSession) Submit(ctx context.Context, answer string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAnswerable(); err != nil {
		return SubmitResult{}, err
	}
	return s.submit(ctx, s.progress.CurrentStage, answer), nil
}

// SubmitAt is Submit for an answer chosen while stage was shown.
// It returns ErrStageChanged when the session has moved past stage.
func (s *QuizSession) SubmitAt(ctx context.Context, stage entities.Stage, answer string) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAnswerable(); err != nil {
		return SubmitResult{}, err
	}
	if s.progress.CurrentStage != stage {
		return SubmitResult{}, ErrStageChanged
	}
	return s.submit(ctx, stage, answer), nil
}

func (s *QuizSession) checkAnswerable() error {
	switch {
	case s.question == nil:
		return ErrNoQuestion
	case s.progress.Completed:
		return ErrQuizComplete
	case s.pending != nil:
		return ErrAdvancePending
	}
	return nil
}

// submit must be called with s.mu held.
func (s *QuizSession) submit(ctx context.Context, stage entities.Stage, answer string) SubmitResult {
	res := SubmitResult{
		Stage:   stage,
		Correct: answer == s.question.Target.Field(stage),
	}

	outcome := entities.OutcomeWrong
	if res.Correct {
		outcome = entities.OutcomeCorrect
	}

	change, err := s.recorder.Record(ctx, outcome)
	if err != nil {
		s.logger.Error("failed to record outcome", zap.String("question_id", s.question.ID), zap.Error(err))
	}
	res.Streak = change

	if res.Correct {
		res.Completes = s.progress.IsLastStage()
		res.Feedback = StreakMessage(change)

		id, token := s.question.ID, s.token
		s.pending = s.scheduler.AfterFunc(s.delay, func() { s.advance(id, token) })
	} else {
		s.progress.IncorrectAttemptCount++
		res.Feedback = IncorrectEmoji(s.progress.IncorrectAttemptCount) + " " + StreakMessage(change)
	}
	res.IncorrectAttempts = s.progress.IncorrectAttemptCount

	return res
}

// Current returns the active question and a copy of its progress.
func (s *QuizSession) Current() (*entities.QuestionData, entities.QuizProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.question == nil {
		return nil, entities.QuizProgress{}, false
	}
	return s.question, *s.progress, true
}

func (s *QuizSession) advance(questionID string, token uint64) {
	s.mu.Lock()
	if s.question == nil || s.question.ID != questionID || s.token != token {
		s.mu.Unlock()
		return
	}

	s.pending = nil
	s.progress.Advance()

	ev := AdvanceEvent{
		QuestionID: questionID,
		Stage:      s.progress.CurrentStage,
		Completed:  s.progress.Completed,
	}
	fn := s.onAdvance
	s.mu.Unlock()

	if fn != nil {
		fn(ev)
	}
}

func (s *QuizSession) cancelPending() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

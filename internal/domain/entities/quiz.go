package entities

// QuizProgress tracks a learner's position inside the current question.
type QuizProgress struct {
	CurrentStage          Stage // stage awaiting an answer
	TotalStages           int   // number of active stages, 1..MaxStages
	IncorrectAttemptCount int   // wrong answers on the current question
	Completed             bool  // all stages answered
}

// NewQuizProgress creates progress positioned at the first stage.
func NewQuizProgress(totalStages int) *QuizProgress {
	return &QuizProgress{
		CurrentStage: StageOne,
		TotalStages:  min(max(totalStages, 1), MaxStages),
	}
}

// Advance moves to the next stage or marks the question complete.
func (p *QuizProgress) Advance() {
	if p.Completed {
		return
	}
	if int(p.CurrentStage) >= p.TotalStages {
		p.Completed = true
		return
	}
	p.CurrentStage++
}

// IsLastStage reports whether the current stage is the final one.
func (p *QuizProgress) IsLastStage() bool {
	return int(p.CurrentStage) >= p.TotalStages
}

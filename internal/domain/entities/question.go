package entities

// AnswerSlots is the number of candidates offered per stage.
const AnswerSlots = 4

// QuestionData is a generated question. It lives until the next question replaces it.
type QuestionData struct {
	ID           string             // unique question identity
	Target       Term               // the correct answers
	QuestionText string             // a source context with the target blanked out
	Answers      map[Stage][]string // exactly AnswerSlots candidates per active stage
	Warnings     []string           // non-fatal diagnostics raised during generation
}

// Options returns the candidates for a stage, or nil when the stage is not active.
func (q *QuestionData) Options(s Stage) []string {
	return q.Answers[s]
}

// CorrectIndex returns the slot holding the target value for a stage, or -1.
func (q *QuestionData) CorrectIndex(s Stage) int {
	want := q.Target.Field(s)
	for i, opt := range q.Answers[s] {
		if opt == want {
			return i
		}
	}
	return -1
}

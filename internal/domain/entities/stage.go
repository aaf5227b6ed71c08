package entities

import "fmt"

// Stage identifies one answer phase of a question.
type Stage int

const (
	StageOne   Stage = iota + 1 // the quizzed term itself
	StageTwo                    // its phonetic reading
	StageThree                  // its meaning
)

// MaxStages is the number of stages a question can have.
const MaxStages = 3

// Stages returns the first n stages in order. n is clamped to 1..MaxStages.
func Stages(n int) []Stage {
	n = min(max(n, 1), MaxStages)
	out := make([]Stage, 0, n)
	for s := StageOne; int(s) <= n; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the known stages.
func (s Stage) Valid() bool {
	return s >= StageOne && s <= StageThree
}

// Phonetic reports whether the stage quizzes the phonetic reading.
func (s Stage) Phonetic() bool {
	return s == StageTwo
}

func (s Stage) String() string {
	switch s {
	case StageOne:
		return "term"
	case StageTwo:
		return "reading"
	case StageThree:
		return "meaning"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

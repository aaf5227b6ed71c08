package entities

import (
	"math"
	"slices"
)

// Outcome is the result of a single answer submission.
type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
)

// RollingWindow is the number of most recent outcomes used for the rolling accuracy.
const RollingWindow = 50

// Milestones are the streak lengths that get a special message.
var Milestones = []int{5, 10, 20, 50, 75, 100, 200, 300, 500, 1000, 2000}

// StatisticsState stores answer history and the values derived from it.
type StatisticsState struct {
	History        []Outcome `json:"history"` // most recent first
	CurrentStreak  int       `json:"currentStreak"`
	HighestStreak  int       `json:"highestStreak"`
	Last50Percent  int       `json:"last50Percent"`
	OverallPercent int       `json:"overallPercent"`
}

// NewStatisticsState creates an empty state.
func NewStatisticsState() *StatisticsState {
	return &StatisticsState{History: []Outcome{}}
}

// StreakChange describes how a recorded outcome affected the streak.
type StreakChange struct {
	Outcome   Outcome
	Streak    int  // streak after the update
	NewHigh   bool // the streak set a new record
	Milestone bool // the streak hit one of Milestones
	Reset     bool // a non-zero streak was lost
}

// Record applies an outcome and recomputes derived fields.
//
// The update order is:
//  1. Prepend the outcome to the history.
//  2. Extend or reset the current streak, raising the highest streak on a record.
//  3. Recompute the rolling and overall accuracy.
func (s *StatisticsState) Record(o Outcome) StreakChange {
	// 1. Most recent outcome goes first.
	s.History = slices.Insert(s.History, 0, o)

	// 2. Streak handling.
	change := StreakChange{Outcome: o}
	if o == OutcomeCorrect {
		s.CurrentStreak++
		if s.CurrentStreak > s.HighestStreak {
			s.HighestStreak = s.CurrentStreak
			change.NewHigh = true
		}
		change.Milestone = slices.Contains(Milestones, s.CurrentStreak)
	} else {
		change.Reset = s.CurrentStreak > 0
		s.CurrentStreak = 0
	}
	change.Streak = s.CurrentStreak

	// 3. Accuracy windows.
	s.Recompute()

	return change
}

// Recompute derives the accuracy percentages from the history.
func (s *StatisticsState) Recompute() {
	window := s.History[:min(len(s.History), RollingWindow)]
	s.Last50Percent = percentCorrect(window)
	s.OverallPercent = percentCorrect(s.History)
}

// Clone returns a deep copy of the state.
func (s *StatisticsState) Clone() *StatisticsState {
	c := *s
	c.History = slices.Clone(s.History)
	if c.History == nil {
		c.History = []Outcome{}
	}
	return &c
}

func percentCorrect(history []Outcome) int {
	if len(history) == 0 {
		return 0
	}

	correct := 0
	for _, o := range history {
		if o == OutcomeCorrect {
			correct++
		}
	}

	return int(math.Round(100 * float64(correct) / float64(len(history))))
}

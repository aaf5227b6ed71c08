package entities

// ReminderPayload carries what a practice reminder message shows.
type ReminderPayload struct {
	ChatID         int64
	VocabularySize int // number of stored entries
	Stats          ReminderStats
}

// ReminderStats contains the statistics quoted in a reminder.
type ReminderStats struct {
	CurrentStreak  int
	HighestStreak  int
	Last50Percent  int
	OverallPercent int
	Answered       int // total outcomes recorded
}

// NewReminderStats summarises statistics for a reminder.
func NewReminderStats(s *StatisticsState) ReminderStats {
	return ReminderStats{
		CurrentStreak:  s.CurrentStreak,
		HighestStreak:  s.HighestStreak,
		Last50Percent:  s.Last50Percent,
		OverallPercent: s.OverallPercent,
		Answered:       len(s.History),
	}
}

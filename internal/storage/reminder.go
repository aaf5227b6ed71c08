package storage

import (
	"sync"
	"time"
)

// ReminderMessage identifies a sent practice reminder.
type ReminderMessage struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

// ReminderStorage remembers the latest reminder per chat so it can be replaced
// by the next one or removed once the learner starts practising.
type ReminderStorage struct {
	mu       sync.Mutex
	messages map[int64]ReminderMessage
}

func NewReminderStorage() *ReminderStorage {
	return &ReminderStorage{
		messages: make(map[int64]ReminderMessage),
	}
}

// Take removes and returns the reminder stored for chatID.
func (s *ReminderStorage) Take(chatID int64) (ReminderMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.messages[chatID]
	delete(s.messages, chatID)
	return msg, ok
}

// UpsertAndGetPrev stores a new reminder and returns the one it replaced.
func (s *ReminderStorage) UpsertAndGetPrev(chatID int64, messageID int, now time.Time) (prev ReminderMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = ReminderMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    now,
	}

	return prev, hadPrev
}

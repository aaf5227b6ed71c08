package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/repository"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

type recordingNotifier struct {
	payloads []entities.ReminderPayload
}

func (n *recordingNotifier) SendReminder(_ context.Context, p entities.ReminderPayload) error {
	n.payloads = append(n.payloads, p)
	return nil
}

func TestReminderServiceSendReminder(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	vocab := repository.NewVocabularyRepository(store)
	stats := repository.NewStatisticsRepository(store)

	svc := NewReminderService(vocab, stats, 42, "0 19 * * *", time.UTC, zap.NewNop())
	if err := svc.SendReminder(ctx); err == nil {
		t.Fatal("expected an error without a notifier")
	}

	n := &recordingNotifier{}
	svc.SetNotifier(n)

	if err := svc.SendReminder(ctx); err != nil {
		t.Fatalf("SendReminder: %v", err)
	}
	if len(n.payloads) != 0 {
		t.Fatalf("reminder sent for an empty vocabulary")
	}

	_ = vocab.Append(ctx, entities.NewVocabularyEntry("猫", "māo", "cat", []string{"猫"}))
	state := entities.NewStatisticsState()
	state.Record(entities.OutcomeCorrect)
	state.Record(entities.OutcomeCorrect)
	_ = stats.Save(ctx, state)

	if err := svc.SendReminder(ctx); err != nil {
		t.Fatalf("SendReminder: %v", err)
	}
	if len(n.payloads) != 1 {
		t.Fatalf("sent %d reminders, want 1", len(n.payloads))
	}

	p := n.payloads[0]
	if p.ChatID != 42 || p.VocabularySize != 1 || p.Stats.CurrentStreak != 2 || p.Stats.Answered != 2 {
		t.Errorf("payload = %+v", p)
	}
}

func TestReminderServiceStart(t *testing.T) {
	store := storage.NewMemory()
	vocab := repository.NewVocabularyRepository(store)
	stats := repository.NewStatisticsRepository(store)

	bad := NewReminderService(vocab, stats, 42, "not a schedule", time.UTC, zap.NewNop())
	if err := bad.Start(context.Background()); err == nil {
		t.Fatal("Start accepted an invalid schedule")
	}

	ctx, cancel := context.WithCancel(context.Background())
	svc := NewReminderService(vocab, stats, 42, "0 19 * * *", nil, zap.NewNop())

	done := make(chan error, 1)
	go func() { done <- svc.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

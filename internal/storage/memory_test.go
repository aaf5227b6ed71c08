package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryGetSetRemove(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, err := m.Get(ctx, "stats"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing key error = %v, want ErrNotFound", err)
	}

	value := []byte(`{"currentStreak":1}`)
	if err := m.Set(ctx, "stats", value); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// The store must not alias caller buffers.
	value[0] = 'x'

	got, err := m.Get(ctx, "stats")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `{"currentStreak":1}` {
		t.Errorf("Get = %q", got)
	}

	if err := m.Remove(ctx, "stats"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := m.Remove(ctx, "stats"); err != nil {
		t.Fatalf("Remove missing key: %v", err)
	}
	if _, err := m.Get(ctx, "stats"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Remove error = %v, want ErrNotFound", err)
	}
}

func TestMemoryWithinTx(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_ = m.Set(ctx, "vocabulary", []byte("[]"))

	errBoom := errors.New("boom")
	err := m.WithinTx(ctx, func(ctx context.Context, s Store) error {
		if err := s.Remove(ctx, "vocabulary"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("WithinTx error = %v, want %v", err, errBoom)
	}
	if _, err := m.Get(ctx, "vocabulary"); err != nil {
		t.Fatalf("rolled back key missing: %v", err)
	}

	err = m.WithinTx(ctx, func(ctx context.Context, s Store) error {
		if err := s.Remove(ctx, "vocabulary"); err != nil {
			return err
		}
		return s.Set(ctx, "stats", []byte("{}"))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if _, err := m.Get(ctx, "vocabulary"); !errors.Is(err, ErrNotFound) {
		t.Errorf("committed remove not applied: %v", err)
	}
	if _, err := m.Get(ctx, "stats"); err != nil {
		t.Errorf("committed set not applied: %v", err)
	}
}

func TestReminderStorage(t *testing.T) {
	s := NewReminderStorage()
	now := time.Date(2026, 1, 2, 19, 0, 0, 0, time.UTC)

	if _, had := s.UpsertAndGetPrev(42, 1, now); had {
		t.Fatalf("first upsert reported a previous reminder")
	}

	prev, had := s.UpsertAndGetPrev(42, 2, now.Add(24*time.Hour))
	if !had || prev.MessageID != 1 {
		t.Fatalf("prev = %+v, had = %v", prev, had)
	}

	msg, ok := s.Take(42)
	if !ok || msg.MessageID != 2 {
		t.Fatalf("Take = %+v, %v", msg, ok)
	}
	if _, ok := s.Take(42); ok {
		t.Errorf("Take after Take returned a reminder")
	}
}

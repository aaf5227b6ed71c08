package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/aliskhannn/quizzboi/internal/storage"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestStoreGetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := NewStore(setupTestDB(t))

	if _, err := s.Get(ctx, "numStages"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing: %v", err)
	}

	if err := s.Set(ctx, "numStages", []byte("2")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "numStages", []byte("3")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := s.Get(ctx, "numStages")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "3" {
		t.Fatalf("expected 3, got %q", got)
	}

	if err := s.Remove(ctx, "numStages"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, "numStages"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
	if _, err := s.Get(ctx, "numStages"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get after remove: %v", err)
	}
}

func TestTransactorRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	s := NewStore(db)
	tr := NewTransactor(db)

	if err := s.Set(ctx, "stats", []byte("{}")); err != nil {
		t.Fatalf("set: %v", err)
	}

	errBoom := errors.New("boom")
	err := tr.WithinTx(ctx, func(ctx context.Context, tx storage.Store) error {
		if err := tx.Remove(ctx, "stats"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if _, err := s.Get(ctx, "stats"); err != nil {
		t.Fatalf("rolled back value missing: %v", err)
	}

	err = tr.WithinTx(ctx, func(ctx context.Context, tx storage.Store) error {
		return tx.Remove(ctx, "stats")
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if _, err := s.Get(ctx, "stats"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("committed remove not visible: %v", err)
	}
}

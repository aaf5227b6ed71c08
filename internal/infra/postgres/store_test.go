package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aliskhannn/quizzboi/internal/storage"
)

// openTestPool connects to the database named by QUIZZBOI_TEST_DATABASE_URL.
func openTestPool(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("QUIZZBOI_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("QUIZZBOI_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, dsn, PoolConfig{MaxConns: 2})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := Migrate(ctx, pool); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	return NewStore(pool)
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestPool(t)
	ctx := context.Background()
	key := "test:" + t.Name()
	t.Cleanup(func() { _ = s.Remove(context.Background(), key) })

	if _, err := s.Get(ctx, key); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get missing error = %v", err)
	}
	if err := s.Set(ctx, key, []byte("1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, key, []byte("2")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}

	got, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "2" {
		t.Errorf("Get = %q, want %q", got, "2")
	}
}

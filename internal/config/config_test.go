package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "local" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.Storage.Driver != DriverSQLite || cfg.Storage.SQLitePath != "quizzboi.db" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
	if cfg.Quiz.AdvanceDelay != 400*time.Millisecond || cfg.Quiz.NumStages != 3 || cfg.Quiz.ContextRadius != 25 {
		t.Errorf("Quiz = %+v", cfg.Quiz)
	}
	if !cfg.Ingest.CJKBoundaries || cfg.Ingest.HTTPTimeout != 30*time.Second || cfg.Ingest.MaxBodyBytes != 10<<20 {
		t.Errorf("Ingest = %+v", cfg.Ingest)
	}
	if !cfg.Reminder.Enabled || cfg.Reminder.Schedule != "0 19 * * *" || cfg.Reminder.Timezone != "Local" {
		t.Errorf("Reminder = %+v", cfg.Reminder)
	}

	if _, err := cfg.DB.DSN(); !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Errorf("DSN error = %v", err)
	}
	if err := cfg.Telegram.Validate(); !errors.Is(err, ErrMissingEnvironmentVariables) {
		t.Errorf("Telegram.Validate error = %v", err)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
env: production
storage:
  driver: memory
quiz:
  num_stages: 2
  hard_phonetic_mode: true
reminder:
  schedule: "30 8 * * *"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")
	t.Setenv("DATABASE_URL", "postgres://localhost/quizzboi")
	t.Setenv("QUIZ_CONTEXT_RADIUS", "10")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "production" || cfg.Storage.Driver != DriverMemory {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Quiz.NumStages != 2 || !cfg.Quiz.HardPhoneticMode || cfg.Quiz.ContextRadius != 10 {
		t.Errorf("Quiz = %+v", cfg.Quiz)
	}
	if cfg.Reminder.Schedule != "30 8 * * *" {
		t.Errorf("Reminder.Schedule = %q", cfg.Reminder.Schedule)
	}
	if err := cfg.Telegram.Validate(); err != nil {
		t.Errorf("Telegram.Validate: %v", err)
	}
	if cfg.Telegram.ChatID != 12345 {
		t.Errorf("ChatID = %d", cfg.Telegram.ChatID)
	}
	if dsn, err := cfg.DB.DSN(); err != nil || dsn != "postgres://localhost/quizzboi" {
		t.Errorf("DSN = %q, %v", dsn, err)
	}
}

func TestLoadUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")

	if _, err := Load(t.TempDir()); !errors.Is(err, ErrUnknownStorageDriver) {
		t.Fatalf("Load error = %v, want ErrUnknownStorageDriver", err)
	}
}

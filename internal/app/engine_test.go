package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/config"
	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/service"
)

const (
	testVocab = `猫 - māo - cat
狗 - gǒu - dog
鱼 - yú - fish
鸟 - niǎo - bird
马 - mǎ - horse`
	testSource = "我有一只猫。他有一只狗。水里有鱼。天上有鸟。草地上有马。"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Env:     "local",
		Storage: config.Storage{Driver: driver},
		Quiz: config.Quiz{
			AdvanceDelay:  time.Millisecond,
			NumStages:     3,
			ContextRadius: 5,
		},
		Ingest:   config.Ingest{CJKBoundaries: true},
		Reminder: config.Reminder{Schedule: "0 19 * * *"},
	}
}

func TestEngineQuizRoundTrip(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name   string
		driver string
		path   string
	}{
		{name: "memory", driver: config.DriverMemory},
		{name: "sqlite", driver: config.DriverSQLite, path: filepath.Join(t.TempDir(), "quizzboi.db")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig(tc.driver)
			cfg.Storage.SQLitePath = tc.path

			e, err := New(ctx, cfg, zap.NewNop())
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			defer e.Close()

			report, err := e.Vocabulary.Ingest(ctx, testVocab, testSource)
			if err != nil {
				t.Fatalf("Ingest: %v", err)
			}
			if len(report.Added) != 5 {
				t.Fatalf("added %v, want 5 entries", report.Added)
			}

			advanced := make(chan service.AdvanceEvent, 1)
			e.Quiz.OnAdvance(func(ev service.AdvanceEvent) { advanced <- ev })

			q, err := e.Quiz.Generate(ctx)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}

			res, err := e.Quiz.Submit(ctx, q.Target.Field(entities.StageOne))
			if err != nil {
				t.Fatalf("Submit: %v", err)
			}
			if !res.Correct {
				t.Fatalf("correct answer reported wrong: %+v", res)
			}

			select {
			case ev := <-advanced:
				if ev.Stage != entities.StageTwo {
					t.Errorf("advanced to %v, want %v", ev.Stage, entities.StageTwo)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("stage advance not delivered")
			}

			stats, err := e.Statistics.Get(ctx)
			if err != nil {
				t.Fatalf("Statistics.Get: %v", err)
			}
			if stats.CurrentStreak != 1 {
				t.Errorf("CurrentStreak = %d, want 1", stats.CurrentStreak)
			}

			if err := e.Reset.Reset(ctx, service.ResetScope{Statistics: true, Vocabulary: true}); err != nil {
				t.Fatalf("Reset: %v", err)
			}
			if _, err := e.Quiz.Generate(ctx); !errors.Is(err, service.ErrEmptyVocabulary) {
				t.Errorf("Generate after reset error = %v, want ErrEmptyVocabulary", err)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	cfg := testConfig(config.DriverMemory)
	cfg.Quiz.NumStages = 7
	cfg.Quiz.HardPhoneticMode = true

	got := DefaultSettings(cfg)
	want := entities.Settings{NumStages: entities.MaxStages, HardPhoneticMode: true, ContextRadius: 5}
	if got != want {
		t.Errorf("DefaultSettings = %+v, want %+v", got, want)
	}
}

func TestNewUnknownDriver(t *testing.T) {
	if _, err := New(context.Background(), testConfig("redis"), zap.NewNop()); !errors.Is(err, config.ErrUnknownStorageDriver) {
		t.Fatalf("New error = %v, want ErrUnknownStorageDriver", err)
	}
}

func TestNewReminderService(t *testing.T) {
	cfg := testConfig(config.DriverMemory)
	e, err := New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()

	cfg.Reminder.Timezone = "UTC+8"
	if _, err := e.NewReminderService(1); err != nil {
		t.Errorf("NewReminderService: %v", err)
	}

	cfg.Reminder.Timezone = "Nowhere/Special"
	if _, err := e.NewReminderService(1); !errors.Is(err, entities.ErrUnsupportedTimezone) {
		t.Errorf("NewReminderService error = %v, want ErrUnsupportedTimezone", err)
	}
}

// Package app wires configuration, storage and services into a running engine.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/quizzboi/internal/config"
	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/infra/postgres"
	"github.com/aliskhannn/quizzboi/internal/infra/sqlite"
	"github.com/aliskhannn/quizzboi/internal/repository"
	"github.com/aliskhannn/quizzboi/internal/service"
	"github.com/aliskhannn/quizzboi/internal/source"
	"github.com/aliskhannn/quizzboi/internal/storage"
)

// Engine holds the services shared by the CLI and the bot.
type Engine struct {
	cfg    *config.Config
	logger *zap.Logger

	vocabRepo *repository.VocabularyRepository
	statsRepo *repository.StatisticsRepository

	Vocabulary *service.VocabularyService
	Statistics *service.StatisticsTracker
	Settings   *service.SettingsService
	Reset      *service.ResetService
	Quiz       *service.QuizSession
	Fetcher    *source.Fetcher

	close func()
}

// New opens the configured store and builds all services on top of it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	store, tr, closeFn, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	defaults := DefaultSettings(cfg)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	extractor := service.NewContextExtractor(cfg.Ingest.CJKBoundaries)

	vocabRepo := repository.NewVocabularyRepository(store)
	statsRepo := repository.NewStatisticsRepository(store)
	settingsRepo := repository.NewSettingsRepository(store, defaults)

	settingsService := service.NewSettingsService(settingsRepo)
	statsTracker := service.NewStatisticsTracker(statsRepo, logger)
	generator := service.NewQuestionGenerator(vocabRepo, extractor, rng, logger)

	delay := cfg.Quiz.AdvanceDelay
	if delay <= 0 {
		delay = service.DefaultAdvanceDelay
	}

	return &Engine{
		cfg:        cfg,
		logger:     logger,
		vocabRepo:  vocabRepo,
		statsRepo:  statsRepo,
		Vocabulary: service.NewVocabularyService(vocabRepo, settingsService, extractor, logger),
		Statistics: statsTracker,
		Settings:   settingsService,
		Reset:      service.NewResetService(tr, defaults),
		Quiz: service.NewQuizSession(
			generator,
			settingsService,
			statsTracker,
			service.NewTimeScheduler(),
			delay,
			logger,
		),
		Fetcher: source.NewFetcher(cfg.Ingest.HTTPTimeout, cfg.Ingest.MaxBodyBytes, logger),
		close:   closeFn,
	}, nil
}

// NewReminderService creates the practice reminder job for chatID.
func (e *Engine) NewReminderService(chatID int64) (*service.ReminderService, error) {
	loc, err := entities.ParseLocation(e.cfg.Reminder.Timezone)
	if err != nil {
		return nil, fmt.Errorf("reminder timezone: %w", err)
	}
	return service.NewReminderService(e.vocabRepo, e.statsRepo, chatID, e.cfg.Reminder.Schedule, loc, e.logger), nil
}

// Close releases the underlying store.
func (e *Engine) Close() {
	if e.close != nil {
		e.close()
	}
}

// DefaultSettings returns the settings used until the learner changes them.
func DefaultSettings(cfg *config.Config) entities.Settings {
	s := entities.NewSettings()
	if cfg.Quiz.NumStages > 0 {
		s.NumStages = min(cfg.Quiz.NumStages, entities.MaxStages)
	}
	if cfg.Quiz.ContextRadius > 0 {
		s.ContextRadius = cfg.Quiz.ContextRadius
	}
	s.HardPhoneticMode = cfg.Quiz.HardPhoneticMode
	return s
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, storage.Transactor, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		m := storage.NewMemory()
		return m, m, func() {}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		logger.Debug("sqlite store opened", zap.String("path", cfg.Storage.SQLitePath))
		return sqlite.NewStore(db), sqlite.NewTransactor(db), func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("postgres dsn: %w", err)
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}

		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("migrate postgres: %w", err)
		}
		logger.Debug("postgres store opened")
		return postgres.NewStore(pool), postgres.NewTransactor(pool), pool.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.Storage.Driver)
	}
}

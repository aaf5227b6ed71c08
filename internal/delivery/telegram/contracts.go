package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
	"github.com/aliskhannn/quizzboi/internal/service"
	"github.com/aliskhannn/quizzboi/internal/source"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type QuizSession interface {
	Generate(ctx context.Context) (*entities.QuestionData, error)
	Submit(ctx context.Context, answer string) (service.SubmitResult, error)
	SubmitAt(ctx context.Context, stage entities.Stage, answer string) (service.SubmitResult, error)
	Current() (*entities.QuestionData, entities.QuizProgress, bool)
	OnAdvance(fn func(service.AdvanceEvent))
}

type StatisticsService interface {
	Get(ctx context.Context) (*entities.StatisticsState, error)
}

type SettingsService interface {
	Get(ctx context.Context) (entities.Settings, error)
	UpdateNumStages(ctx context.Context, n int) (entities.Settings, error)
	UpdateContextRadius(ctx context.Context, radius int) (entities.Settings, error)
	ToggleHardPhoneticMode(ctx context.Context) (entities.Settings, error)
}

type VocabularyService interface {
	Ingest(ctx context.Context, vocabText, sourceText string) (*service.IngestReport, error)
	List(ctx context.Context) ([]entities.VocabularyEntry, error)
}

type ResetService interface {
	Reset(ctx context.Context, scope service.ResetScope) error
}

type SourceFetcher interface {
	FetchURL(ctx context.Context, rawURL string) (source.Article, error)
}

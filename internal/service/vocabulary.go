package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/aliskhannn/quizzboi/internal/domain/entities"
)

var (
	ErrMissingInput = errors.New("both vocabulary and source text are required")
	ErrNoVocabulary = errors.New("no vocabulary lines in the expected format (term - reading - meaning)")
)

const (
	fieldSeparator    = " - "
	vocabularyColumns = 3
)

// IngestReport summarises a bulk ingest.
type IngestReport struct {
	Added     []string // primary terms stored
	Unmatched []string // primary terms with no context in the source text
	Skipped   int      // malformed non-empty lines
}

// Warning returns the aggregated message for unmatched terms, or "" when all matched.
func (r *IngestReport) Warning() string {
	if len(r.Unmatched) == 0 {
		return ""
	}
	return "No matches found for " + strings.Join(r.Unmatched, " ")
}

// VocabularyService manages the vocabulary bank.
type VocabularyService struct {
	repository VocabularyRepository
	settings   SettingsProvider
	extractor  *ContextExtractor
	logger     *zap.Logger
}

func NewVocabularyService(
	repository VocabularyRepository,
	settings SettingsProvider,
	extractor *ContextExtractor,
	logger *zap.Logger,
) *VocabularyService {
	return &VocabularyService{
		repository: repository,
		settings:   settings,
		extractor:  extractor,
		logger:     logger,
	}
}

// ParseVocabulary reads "term - reading - meaning" lines. Blank lines are ignored and
// lines without exactly three fields are counted as skipped.
func ParseVocabulary(input string) ([]entities.Term, int) {
	var (
		terms   []entities.Term
		skipped int
	)

	for line := range strings.Lines(input) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, fieldSeparator)
		if len(parts) != vocabularyColumns {
			skipped++
			continue
		}

		for i := range parts {
			parts[i] = norm.NFC.String(strings.TrimSpace(parts[i]))
		}
		if parts[0] == "" {
			skipped++
			continue
		}

		terms = append(terms, entities.Term{Primary: parts[0], Secondary: parts[1], Tertiary: parts[2]})
	}

	return terms, skipped
}

// Ingest parses vocabText, finds each term's contexts in sourceText and stores the
// terms that have at least one.
func (s *VocabularyService) Ingest(ctx context.Context, vocabText, sourceText string) (*IngestReport, error) {
	if strings.TrimSpace(vocabText) == "" || strings.TrimSpace(sourceText) == "" {
		return nil, ErrMissingInput
	}

	terms, skipped := ParseVocabulary(vocabText)
	if len(terms) == 0 {
		return nil, ErrNoVocabulary
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	sourceText = norm.NFC.String(sourceText)
	report := &IngestReport{Skipped: skipped}
	entries := make([]entities.VocabularyEntry, 0, len(terms))
	for _, term := range terms {
		contexts := s.extractor.Extract(term.Primary, sourceText, settings.ContextRadius)
		if len(contexts) == 0 {
			report.Unmatched = append(report.Unmatched, term.Primary)
			continue
		}

		entries = append(entries, entities.VocabularyEntry{Term: term, Sources: contexts})
		report.Added = append(report.Added, term.Primary)
	}

	if err := s.repository.Append(ctx, entries...); err != nil {
		return nil, fmt.Errorf("store vocabulary: %w", err)
	}

	if len(report.Unmatched) > 0 {
		s.logger.Warn("ingest dropped unmatched terms",
			zap.Strings("terms", report.Unmatched),
		)
	}
	s.logger.Info("vocabulary ingested",
		zap.Int("added", len(report.Added)),
		zap.Int("unmatched", len(report.Unmatched)),
		zap.Int("skipped", report.Skipped),
	)

	return report, nil
}

// List returns all stored entries.
func (s *VocabularyService) List(ctx context.Context) ([]entities.VocabularyEntry, error) {
	return s.repository.GetAll(ctx)
}

// Delete removes the entries with the given primary term.
func (s *VocabularyService) Delete(ctx context.Context, primary string) (int, error) {
	return s.repository.Delete(ctx, norm.NFC.String(strings.TrimSpace(primary)))
}

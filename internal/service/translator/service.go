package translator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/slang-backend/internal/domain"
	"github.com/heartmarshall/slang-backend/internal/matcher"
)

// dictionarySource supplies the currently loaded dictionary.
// It returns false when no dictionary could be loaded.
type dictionarySource interface {
	Current() (*matcher.Dictionary, bool)
}

// Service implements the slang lookup operations: translate, suggest,
// entry details and categories.
type Service struct {
	log    *slog.Logger
	source dictionarySource
}

// NewService creates a new translator Service.
func NewService(logger *slog.Logger, source dictionarySource) *Service {
	return &Service{
		log:    logger.With("service", "translator"),
		source: source,
	}
}

// Translate looks up a phrase. Empty or whitespace-only phrases are rejected
// with a validation error before the dictionary is consulted. A phrase with
// no match is not an error: it yields a not-found result with zero confidence.
func (s *Service) Translate(ctx context.Context, phrase string) (*domain.Translation, error) {
	if strings.TrimSpace(phrase) == "" {
		return nil, domain.NewValidationError("phrase", "Phrase cannot be empty")
	}

	dict, err := s.dictionary(ctx)
	if err != nil {
		return nil, err
	}

	result := dict.Translate(phrase)

	s.log.DebugContext(ctx, "phrase translated",
		slog.String("phrase", phrase),
		slog.String("kind", result.Kind.String()),
		slog.Float64("confidence", result.Confidence),
	)

	return &result, nil
}

// Suggest returns ranked term suggestions for a query. An empty query
// returns an empty result without touching the dictionary.
// Limit is clamped to [1, 10], defaulting to 10.
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return []string{}, nil
	}

	dict, err := s.dictionary(ctx)
	if err != nil {
		return nil, err
	}

	return dict.Suggest(query, limit), nil
}

// Entry returns the full dictionary entry for a term.
func (s *Service) Entry(ctx context.Context, term string) (*domain.Entry, error) {
	if strings.TrimSpace(term) == "" {
		return nil, domain.NewValidationError("term", "required")
	}

	dict, err := s.dictionary(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := dict.Entry(term)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entry, nil
}

// Categories lists the categories present in the dictionary with entry counts.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	dict, err := s.dictionary(ctx)
	if err != nil {
		return nil, err
	}
	return dict.Categories(), nil
}

// Status reports whether a dictionary is loaded and its metadata.
func (s *Service) Status(_ context.Context) (domain.Metadata, bool) {
	dict, ok := s.source.Current()
	if !ok {
		return domain.Metadata{}, false
	}
	return dict.Metadata(), true
}

func (s *Service) dictionary(ctx context.Context) (*matcher.Dictionary, error) {
	dict, ok := s.source.Current()
	if !ok || dict == nil {
		s.log.WarnContext(ctx, "request rejected: dictionary not loaded")
		return nil, domain.ErrDictionaryUnavailable
	}
	return dict, nil
}

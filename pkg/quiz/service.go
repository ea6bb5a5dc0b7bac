package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/umputun/newsquiz/pkg/domain"
	"github.com/umputun/newsquiz/pkg/metrics"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

var (
	// ErrSourceUnavailable is returned when the feed can't be fetched or parsed
	ErrSourceUnavailable = errors.New("feed source unavailable")
	// ErrInsufficientMaterial is returned when the feed has too few usable items for a quiz
	ErrInsufficientMaterial = errors.New("not enough news items for a quiz")
)

// Fetcher retrieves and parses a feed into items
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.Item, error)
}

// Service generates quizzes from category feeds
type Service struct {
	catalog   *Catalog
	fetcher   Fetcher
	builder   *Builder
	questions int
	now       func() time.Time
	newRand   func() *rand.Rand
}

// Option configures Service
type Option func(s *Service)

// WithQuestions sets the number of questions requested per quiz
func WithQuestions(n int) Option {
	return func(s *Service) { s.questions = n }
}

// WithBuilder sets the question builder
func WithBuilder(b *Builder) Option {
	return func(s *Service) { s.builder = b }
}

// WithClock sets the time source used to select today's items
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand sets the random generator factory, called once per quiz
func WithRand(newRand func() *rand.Rand) Option {
	return func(s *Service) { s.newRand = newRand }
}

// NewService makes a quiz service for the catalog's categories
func NewService(catalog *Catalog, fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		catalog:   catalog,
		fetcher:   fetcher,
		builder:   NewBuilder(),
		questions: DefaultQuestionCount,
		now:       time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // quiz shuffling is not security sensitive
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories returns the categories quizzes can be generated for
func (s *Service) Categories() []domain.Category {
	return s.catalog.Categories()
}

// Generate fetches the feed for the category and builds a quiz from today's items.
// Returns ErrSourceUnavailable if the feed fails and ErrInsufficientMaterial if no question could be made.
func (s *Service) Generate(ctx context.Context, category string) (*domain.Quiz, error) {
	name, feedURL := s.catalog.Resolve(category)

	start := time.Now()
	items, err := s.fetcher.Fetch(ctx, feedURL)
	metrics.FeedFetchDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuizRequestsTotal.WithLabelValues(name, metrics.StatusFetchError).Inc()
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, feedURL, err)
	}

	selected := SelectItems(items, s.now())
	log.Printf("[DEBUG] category %s, %d items fetched, %d selected", name, len(items), len(selected))

	questions := s.builder.Build(s.newRand(), selected, s.questions)
	metrics.QuestionsGenerated.Observe(float64(len(questions)))
	if len(questions) == 0 {
		metrics.QuizRequestsTotal.WithLabelValues(name, metrics.StatusInsufficient).Inc()
		return nil, fmt.Errorf("%w: %d items in %s", ErrInsufficientMaterial, len(selected), feedURL)
	}

	metrics.QuizRequestsTotal.WithLabelValues(name, metrics.StatusOK).Inc()
	return &domain.Quiz{
		Category:      name,
		FeedURL:       feedURL,
		GeneratedAt:   s.now().UTC(),
		QuestionCount: len(questions),
		Questions:     questions,
	}, nil
}

package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsquiz/pkg/domain"
	"github.com/umputun/newsquiz/pkg/quiz/mocks"
)

func testService(t *testing.T, fetcher Fetcher, now time.Time) *Service {
	t.Helper()
	catalog, err := NewCatalog(map[string]string{
		"sverige": "https://example.com/sverige.xml",
		"varlden": "https://example.com/varlden.xml",
	}, "sverige")
	require.NoError(t, err)

	return NewService(catalog, fetcher,
		WithClock(func() time.Time { return now }),
		WithRand(func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }),
	)
}

func TestService_Generate(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	t.Run("success", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, feedURL string) ([]domain.Item, error) {
				return testItems(10), nil
			},
		}
		svc := testService(t, fetcher, now)

		res, err := svc.Generate(context.Background(), "VARLDEN")
		require.NoError(t, err)
		assert.Equal(t, "varlden", res.Category)
		assert.Equal(t, "https://example.com/varlden.xml", res.FeedURL)
		assert.Equal(t, now.UTC(), res.GeneratedAt)
		assert.Equal(t, 7, res.QuestionCount)
		assert.Len(t, res.Questions, res.QuestionCount)

		require.Len(t, fetcher.FetchCalls(), 1)
		assert.Equal(t, "https://example.com/varlden.xml", fetcher.FetchCalls()[0].FeedURL)
	})

	t.Run("unknown category falls back to default", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, feedURL string) ([]domain.Item, error) {
				return testItems(10), nil
			},
		}
		svc := testService(t, fetcher, now)

		res, err := svc.Generate(context.Background(), "sport")
		require.NoError(t, err)
		assert.Equal(t, "sverige", res.Category)
		assert.Equal(t, "https://example.com/sverige.xml", res.FeedURL)
	})

	t.Run("today's items preferred", func(t *testing.T) {
		published := now.Add(-time.Hour)
		old := now.Add(-72 * time.Hour)
		items := testItems(15)
		for i := range items {
			items[i].Published = &old
			if i >= 10 {
				items[i].Published = &published
			}
		}
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, feedURL string) ([]domain.Item, error) {
				return items, nil
			},
		}
		svc := testService(t, fetcher, now)

		res, err := svc.Generate(context.Background(), "")
		require.NoError(t, err)
		// five items from today allow min(7, 5-3) questions
		assert.Equal(t, 2, res.QuestionCount)
		for _, q := range res.Questions {
			assert.Contains(t, []string{items[10].Link, items[11].Link, items[12].Link, items[13].Link, items[14].Link}, q.Link)
		}
	})

	t.Run("fetch error", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, feedURL string) ([]domain.Item, error) {
				return nil, errors.New("connection refused")
			},
		}
		svc := testService(t, fetcher, now)

		res, err := svc.Generate(context.Background(), "sverige")
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
		assert.NotErrorIs(t, err, ErrInsufficientMaterial)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("items without summaries", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, feedURL string) ([]domain.Item, error) {
				items := make([]domain.Item, 20)
				for i := range items {
					items[i] = domain.Item{Title: fmt.Sprintf("title %d", i)}
				}
				return items, nil
			},
		}
		svc := testService(t, fetcher, now)

		res, err := svc.Generate(context.Background(), "sverige")
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrInsufficientMaterial)
		assert.NotErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("custom question count", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, feedURL string) ([]domain.Item, error) {
				return testItems(10), nil
			},
		}
		catalog, err := NewCatalog(map[string]string{"sverige": "https://example.com/sverige.xml"}, "sverige")
		require.NoError(t, err)
		svc := NewService(catalog, fetcher, WithQuestions(3), WithBuilder(&Builder{
			HeadlinePrompt: "h", SummaryPrompt: "s", SummaryLength: 100,
		}))

		res, err := svc.Generate(context.Background(), "sverige")
		require.NoError(t, err)
		assert.Equal(t, 3, res.QuestionCount)
		assert.Len(t, svc.Categories(), 1)
	})
}

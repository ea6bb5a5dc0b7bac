package quiz

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsquiz/pkg/domain"
)

func testItems(n int) []domain.Item {
	res := make([]domain.Item, n)
	for i := range res {
		res[i] = domain.Item{
			Title:   fmt.Sprintf("Headline number %d", i),
			Snippet: fmt.Sprintf("Summary of the story number %d. ", i) + strings.Repeat("More words follow here. ", i%3*10),
			Link:    fmt.Sprintf("https://example.com/news/%d", i),
		}
	}
	return res
}

// checkQuestion verifies option invariants and that the correct option belongs to the linked item
func checkQuestion(t *testing.T, b *Builder, items []domain.Item, q domain.Question) {
	t.Helper()
	require.GreaterOrEqual(t, len(q.Options), 2)
	require.LessOrEqual(t, len(q.Options), 4)
	require.GreaterOrEqual(t, q.CorrectIndex, 0)
	require.Less(t, q.CorrectIndex, len(q.Options))

	seen := map[string]bool{}
	for _, o := range q.Options {
		assert.False(t, seen[o], "duplicate option %q", o)
		seen[o] = true
	}

	var source *domain.Item
	for i := range items {
		if items[i].Link == q.Link {
			source = &items[i]
			break
		}
	}
	require.NotNil(t, source, "no item for link %s", q.Link)

	snippet := Truncate(source.Summary(), b.SummaryLength)
	switch q.QuestionText {
	case b.HeadlinePrompt:
		assert.Equal(t, snippet, q.Summary)
		assert.Equal(t, source.Title, q.Options[q.CorrectIndex])
	case b.SummaryPrompt:
		assert.Equal(t, source.Title, q.Summary)
		assert.Equal(t, snippet, q.Options[q.CorrectIndex])
	default:
		t.Fatalf("unexpected question text %q", q.QuestionText)
	}
}

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder()

	t.Run("empty input", func(t *testing.T) {
		rnd := rand.New(rand.NewPCG(1, 1))
		assert.Empty(t, b.Build(rnd, nil, 7))
		assert.Empty(t, b.Build(rnd, []domain.Item{}, 7))
	})

	t.Run("three usable items", func(t *testing.T) {
		rnd := rand.New(rand.NewPCG(1, 1))
		assert.Empty(t, b.Build(rnd, testItems(3), 7))
	})

	t.Run("unusable items are ignored", func(t *testing.T) {
		items := testItems(3)
		items = append(items,
			domain.Item{Title: "no summary"},
			domain.Item{Snippet: "no title"},
			domain.Item{Title: "", Content: "<p>no title</p>"},
		)
		rnd := rand.New(rand.NewPCG(1, 1))
		assert.Empty(t, b.Build(rnd, items, 7))
	})

	t.Run("items without summaries", func(t *testing.T) {
		items := make([]domain.Item, 20)
		for i := range items {
			items[i] = domain.Item{Title: fmt.Sprintf("title %d", i), Link: fmt.Sprintf("https://example.com/%d", i)}
		}
		rnd := rand.New(rand.NewPCG(1, 1))
		assert.Empty(t, b.Build(rnd, items, 7))
	})

	t.Run("ten usable items", func(t *testing.T) {
		items := testItems(10)
		for seed := uint64(0); seed < 100; seed++ {
			rnd := rand.New(rand.NewPCG(seed, seed*31))
			questions := b.Build(rnd, items, 7)
			require.Len(t, questions, 7, "distinct items never skip a question")
			for i, q := range questions {
				assert.Equal(t, i+1, q.ID)
				assert.Len(t, q.Options, 4)
				checkQuestion(t, b, items, q)
			}
		}
	})

	t.Run("four usable items", func(t *testing.T) {
		items := testItems(4)
		for seed := uint64(0); seed < 50; seed++ {
			questions := b.Build(rand.New(rand.NewPCG(seed, 1)), items, 7)
			require.Len(t, questions, 1)
			assert.Equal(t, 1, questions[0].ID)
			assert.Len(t, questions[0].Options, 4)
			checkQuestion(t, b, items, questions[0])
		}
	})

	t.Run("question count below budget", func(t *testing.T) {
		questions := b.Build(rand.New(rand.NewPCG(5, 5)), testItems(20), 3)
		assert.Len(t, questions, 3)
	})

	t.Run("zero or negative count", func(t *testing.T) {
		assert.Empty(t, b.Build(rand.New(rand.NewPCG(5, 5)), testItems(10), 0))
		assert.Empty(t, b.Build(rand.New(rand.NewPCG(5, 5)), testItems(10), -1))
	})

	t.Run("content used when snippet missing", func(t *testing.T) {
		items := testItems(6)
		for i := range items {
			items[i].Content = items[i].Snippet
			items[i].Snippet = ""
		}
		questions := b.Build(rand.New(rand.NewPCG(9, 9)), items, 7)
		require.Len(t, questions, 3)
		for _, q := range questions {
			checkQuestion(t, b, items, q)
		}
	})

	t.Run("same seed same quiz", func(t *testing.T) {
		items := testItems(12)
		q1 := b.Build(rand.New(rand.NewPCG(11, 12)), items, 7)
		q2 := b.Build(rand.New(rand.NewPCG(11, 12)), items, 7)
		assert.Equal(t, q1, q2)
	})

	t.Run("both framings used", func(t *testing.T) {
		items := testItems(10)
		prompts := map[string]int{}
		for seed := uint64(0); seed < 50; seed++ {
			for _, q := range b.Build(rand.New(rand.NewPCG(seed, 2)), items, 7) {
				prompts[q.QuestionText]++
			}
		}
		assert.Len(t, prompts, 2)
		assert.Positive(t, prompts[DefaultHeadlinePrompt])
		assert.Positive(t, prompts[DefaultSummaryPrompt])
	})
}

func TestBuilder_Build_SkipsQuestionsWithoutOptions(t *testing.T) {
	b := NewBuilder()

	// identical summaries leave no distractors for the "pick the summary" framing
	items := testItems(5)
	for i := range items {
		items[i].Snippet = "Same summary for every story"
	}

	var shorter, gapped bool
	for seed := uint64(0); seed < 200; seed++ {
		questions := b.Build(rand.New(rand.NewPCG(seed, 3)), items, 2)
		require.LessOrEqual(t, len(questions), 2)
		if len(questions) < 2 {
			shorter = true
		}
		for i, q := range questions {
			assert.Equal(t, DefaultHeadlinePrompt, q.QuestionText)
			checkQuestion(t, b, items, q)
			if q.ID != i+1 {
				gapped = true
			}
		}
	}
	assert.True(t, shorter, "some quizzes expected to be shorter than requested")
	assert.True(t, gapped, "ids follow loop position, gaps expected after a skip")
}

func TestBuilder_Build_DuplicateTitles(t *testing.T) {
	b := NewBuilder()

	items := testItems(6)
	for i := range items {
		items[i].Title = "Same headline"
	}

	for seed := uint64(0); seed < 100; seed++ {
		for _, q := range b.Build(rand.New(rand.NewPCG(seed, 4)), items, 3) {
			// a headline can't be told apart from its copies, so only the summary framing survives
			assert.Equal(t, DefaultSummaryPrompt, q.QuestionText)
			checkQuestion(t, b, items, q)
		}
	}
}

func TestBuilder_Build_CustomPrompts(t *testing.T) {
	b := &Builder{HeadlinePrompt: "Pick the headline", SummaryPrompt: "Pick the summary", SummaryLength: 45}
	items := testItems(8)

	questions := b.Build(rand.New(rand.NewPCG(21, 21)), items, 5)
	require.Len(t, questions, 5)
	for _, q := range questions {
		assert.Contains(t, []string{"Pick the headline", "Pick the summary"}, q.QuestionText)
		checkQuestion(t, b, items, q)
		for _, o := range q.Options {
			if q.QuestionText == "Pick the summary" {
				assert.LessOrEqual(t, len([]rune(o)), 47)
			}
		}
	}
}

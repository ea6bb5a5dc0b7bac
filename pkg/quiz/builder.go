package quiz

import (
	"math/rand/v2"

	"github.com/umputun/newsquiz/pkg/domain"
)

const (
	// DefaultQuestionCount is the number of questions requested for a quiz
	DefaultQuestionCount = 7
	// DefaultHeadlinePrompt asks to pick the headline matching the shown summary
	DefaultHeadlinePrompt = "Vilken rubrik stämmer med den här sammanfattningen?"
	// DefaultSummaryPrompt asks to pick the summary matching the shown headline
	DefaultSummaryPrompt = "Vilken sammanfattning hör till den här rubriken?"

	minUsableItems = 4 // one correct item plus three distractors
	maxDistractors = 3
	minOptions     = 2
)

// Builder makes multiple-choice questions out of feed items
type Builder struct {
	HeadlinePrompt string
	SummaryPrompt  string
	SummaryLength  int
}

// NewBuilder makes a Builder with default prompts and summary length
func NewBuilder() *Builder {
	return &Builder{
		HeadlinePrompt: DefaultHeadlinePrompt,
		SummaryPrompt:  DefaultSummaryPrompt,
		SummaryLength:  DefaultSummaryLength,
	}
}

// option is a candidate answer, correct flag survives the shuffle
type option struct {
	text    string
	correct bool
}

// Build makes up to count questions from items. Only items with a title and a summary are used,
// and at least 4 of them are needed, otherwise the result is empty.
//
// The correct item is drawn independently for every question, so the same article may back more
// than one question of a quiz. A question that can't get at least two options is skipped without
// replacement, and ids follow the loop position, so they may have gaps.
func (b *Builder) Build(rnd *rand.Rand, items []domain.Item, count int) []domain.Question {
	usable := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Usable() {
			usable = append(usable, item)
		}
	}
	if len(usable) < minUsableItems {
		return []domain.Question{}
	}

	maxQuestions := min(count, len(usable)-(minUsableItems-1))
	questions := make([]domain.Question, 0, max(maxQuestions, 0))
	for q := 0; q < maxQuestions; q++ {
		correctIdx := rnd.IntN(len(usable))
		correct := usable[correctIdx]
		correctSnippet := Truncate(correct.Summary(), b.SummaryLength)

		others := make([]domain.Item, 0, len(usable)-1)
		others = append(others, usable[:correctIdx]...)
		others = append(others, usable[correctIdx+1:]...)
		others = Shuffle(rnd, others)

		question := domain.Question{ID: q + 1, Link: correct.Link}
		var opts []option
		if rnd.Float64() < 0.5 {
			// show the summary, ask for the headline
			question.QuestionText = b.HeadlinePrompt
			question.Summary = correctSnippet
			opts = append(opts, option{text: correct.Title, correct: true})
			for _, title := range distractors(others, correct.Title, func(it domain.Item) string { return it.Title }) {
				opts = append(opts, option{text: title})
			}
		} else {
			// show the headline, ask for the summary
			question.QuestionText = b.SummaryPrompt
			question.Summary = correct.Title
			opts = append(opts, option{text: correctSnippet, correct: true})
			snippet := func(it domain.Item) string { return Truncate(it.Summary(), b.SummaryLength) }
			for _, text := range distractors(others, correctSnippet, snippet) {
				opts = append(opts, option{text: text})
			}
		}

		if len(opts) < minOptions {
			continue
		}

		opts = Shuffle(rnd, opts)
		question.Options = make([]string, len(opts))
		for i, o := range opts {
			question.Options[i] = o.text
			if o.correct {
				question.CorrectIndex = i
			}
		}
		questions = append(questions, question)
	}

	return questions
}

// distractors returns up to three option texts taken in pool order. Empty texts and texts
// already present among the options are skipped, so the options never repeat.
func distractors(pool []domain.Item, correct string, text func(domain.Item) string) []string {
	res := make([]string, 0, maxDistractors)
	seen := map[string]bool{correct: true}
	for _, item := range pool {
		if len(res) == maxDistractors {
			break
		}
		t := text(item)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		res = append(res, t)
	}
	return res
}

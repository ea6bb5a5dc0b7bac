package domain

import "time"

// Question is a single multiple-choice question built from feed items.
// Summary holds the stem text shown under the question, either an item summary or a headline.
type Question struct {
	ID           int      `json:"id"`
	QuestionText string   `json:"questionText"`
	Summary      string   `json:"summary"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Link         string   `json:"link,omitempty"`
}

// Quiz is a generated set of questions for a category
type Quiz struct {
	Category      string     `json:"category"`
	FeedURL       string     `json:"feedUrl"`
	GeneratedAt   time.Time  `json:"generatedAt"`
	QuestionCount int        `json:"questionCount"`
	Questions     []Question `json:"questions"`
}

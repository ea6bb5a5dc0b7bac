package domain

// Category represents a named news feed the quiz can be built from
type Category struct {
	Name    string `json:"name"`
	FeedURL string `json:"feedUrl"`
	Default bool   `json:"default"`
}

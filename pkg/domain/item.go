package domain

import "time"

// Item represents a single news item as delivered by a feed
type Item struct {
	Title     string
	Snippet   string     // plain-text summary, HTML stripped
	Content   string     // raw description or content as delivered by the feed
	Published *time.Time // nil if the feed has no date for the item
	Link      string
}

// Summary returns the plain-text snippet, falling back to the raw content
func (i Item) Summary() string {
	if i.Snippet != "" {
		return i.Snippet
	}
	return i.Content
}

// Usable reports whether the item has both a title and some summary text
func (i Item) Usable() bool {
	return i.Title != "" && i.Summary() != ""
}

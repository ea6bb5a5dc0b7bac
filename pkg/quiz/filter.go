package quiz

import (
	"time"

	"github.com/umputun/newsquiz/pkg/domain"
)

const (
	// MinTodayItems is the number of items published today required to use them exclusively
	MinTodayItems = 5
	// FallbackItems is the number of leading feed items used when today's news is too thin
	FallbackItems = 20
)

// SelectItems picks items published on the calendar day of now, in now's location.
// If fewer than MinTodayItems match, the first FallbackItems of the feed are returned instead,
// feeds are expected to list the newest items first. Source order is preserved in both cases.
func SelectItems(items []domain.Item, now time.Time) []domain.Item {
	y, m, d := now.Date()
	today := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Published == nil {
			continue
		}
		py, pm, pd := item.Published.In(now.Location()).Date()
		if py == y && pm == m && pd == d {
			today = append(today, item)
		}
	}

	if len(today) >= MinTodayItems {
		return today
	}
	return items[:min(len(items), FallbackItems)]
}

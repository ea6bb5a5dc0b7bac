package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsquiz/pkg/domain"
)

// HTTPFetcher fetches RSS/Atom feeds via HTTP
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	policy    *bluemonday.Policy
}

// NewHTTPFetcher creates a new feed fetcher
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		policy:    bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true),
	}
}

// Fetch retrieves and parses a feed from the given URL
func (f *HTTPFetcher) Fetch(ctx context.Context, feedURL string) ([]domain.Item, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	items := make([]domain.Item, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		content := item.Description
		if content == "" {
			content = item.Content
		}

		parsed := domain.Item{
			Title:   strings.TrimSpace(item.Title),
			Content: content,
			Snippet: f.snippet(content),
			Link:    item.Link,
		}

		// parse publish time
		if item.PublishedParsed != nil {
			parsed.Published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			parsed.Published = item.UpdatedParsed
		}

		items = append(items, parsed)
	}

	return items, nil
}

// snippet makes plain text out of html content, tags stripped and whitespace collapsed
func (f *HTTPFetcher) snippet(content string) string {
	if content == "" {
		return ""
	}
	text := html.UnescapeString(f.policy.Sanitize(content))
	return strings.Join(strings.Fields(text), " ")
}

// fetch retrieves content from a URL
func (f *HTTPFetcher) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

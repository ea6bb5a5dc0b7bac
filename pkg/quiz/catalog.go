package quiz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umputun/newsquiz/pkg/domain"
)

// Catalog maps category names to feed URLs. It is immutable after construction.
type Catalog struct {
	feeds       map[string]string
	defaultName string
}

// NewCatalog makes a catalog from category name to feed URL mapping. Names are matched
// case-insensitively, so names differing only in case are rejected. defaultName must be one of the categories.
func NewCatalog(feeds map[string]string, defaultName string) (*Catalog, error) {
	if len(feeds) == 0 {
		return nil, fmt.Errorf("no categories defined")
	}

	c := &Catalog{feeds: make(map[string]string, len(feeds)), defaultName: strings.ToLower(strings.TrimSpace(defaultName))}
	for name, url := range feeds {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || url == "" {
			return nil, fmt.Errorf("invalid category %q with url %q", name, url)
		}
		if _, dup := c.feeds[key]; dup {
			return nil, fmt.Errorf("duplicate category %q, names are case-insensitive", key)
		}
		c.feeds[key] = url
	}

	if _, ok := c.feeds[c.defaultName]; !ok {
		return nil, fmt.Errorf("default category %q is not defined", defaultName)
	}
	return c, nil
}

// Resolve returns category name and feed URL for the token. Unknown or empty tokens
// resolve to the default category.
func (c *Catalog) Resolve(token string) (name, feedURL string) {
	key := strings.ToLower(strings.TrimSpace(token))
	if url, ok := c.feeds[key]; ok {
		return key, url
	}
	return c.defaultName, c.feeds[c.defaultName]
}

// Categories returns all categories sorted by name
func (c *Catalog) Categories() []domain.Category {
	res := make([]domain.Category, 0, len(c.feeds))
	for name, url := range c.feeds {
		res = append(res, domain.Category{Name: name, FeedURL: url, Default: name == c.defaultName})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

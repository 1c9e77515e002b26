package news

import (
	"sync"
	"time"

	"news-backend/internal/feed"
)

// Cache holds the most recent merged article list. It is replaced
// wholesale on every completed fetch cycle; readers never observe a
// partial update.
type Cache struct {
	mu            sync.Mutex
	articles      []feed.Article
	at            time.Time
	lastFetchDate string
}

func NewCache() *Cache {
	return &Cache{}
}

// Snapshot returns the current article list and the reference-zone date
// of the last completed fetch (empty string if none). The slice is never
// mutated after a Replace, so it is safe to hand out as-is.
func (c *Cache) Snapshot() ([]feed.Article, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.articles, c.lastFetchDate
}

func (c *Cache) Replace(articles []feed.Article, at time.Time, fetchDate string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = articles
	c.at = at
	c.lastFetchDate = fetchDate
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = nil
	c.at = time.Time{}
	c.lastFetchDate = ""
}

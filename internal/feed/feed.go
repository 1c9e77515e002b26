package feed

import (
	"context"
	"log"
	"time"

	"github.com/mmcdole/gofeed"
)

// Article is one normalized feed entry. Date carries the raw published
// string from the feed; Published is the parser's reading of it, zero
// when the feed gave no parseable date.
type Article struct {
	Headline  string    `json:"headline"`
	Summary   string    `json:"summary"`
	Date      string    `json:"date"`
	Link      string    `json:"link"`
	Source    string    `json:"source"`
	Published time.Time `json:"-"`
}

type Fetcher struct {
	parser *gofeed.Parser
}

func New() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// FetchAll retrieves and parses every URL in order. A feed that fails to
// fetch or parse is logged and skipped; the call itself never fails.
// Results are concatenated unsorted.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []Article {
	articles := make([]Article, 0)
	for _, url := range urls {
		parsed, err := f.parser.ParseURLWithContext(url, ctx)
		if err != nil {
			log.Printf("feed %s skipped: %v", url, err)
			continue
		}
		articles = append(articles, normalize(parsed)...)
	}
	return articles
}

func normalize(parsed *gofeed.Feed) []Article {
	out := make([]Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		out = append(out, Article{
			Headline:  item.Title,
			Summary:   summary,
			Date:      item.Published,
			Link:      item.Link,
			Source:    parsed.Title,
			Published: published,
		})
	}
	return out
}

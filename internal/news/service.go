package news

import (
	"context"
	"log"
	"sort"
	"time"

	"news-backend/internal/feed"
)

type Fetcher interface {
	FetchAll(ctx context.Context, urls []string) []feed.Article
}

// Service owns the article cache and the fetch schedule. It is created
// once at process start and handed to the HTTP handlers; the timer loop
// and the per-request catch-up path both funnel through Refresh.
//
// A timer-triggered fetch and a request-triggered catch-up fetch can
// overlap. Both write a complete snapshot and the last writer wins, so
// the overlap wastes a fetch but never corrupts the cache.
type Service struct {
	urls     []string
	fetcher  Fetcher
	cache    *Cache
	schedule *Schedule
	clock    Clock
}

func NewService(urls []string, fetcher Fetcher, schedule *Schedule) *Service {
	return &Service{
		urls:     urls,
		fetcher:  fetcher,
		cache:    NewCache(),
		schedule: schedule,
		clock:    systemClock{},
	}
}

// Refresh runs one fetch cycle: fetch every source, sort newest first,
// replace the cache. Individual feed failures are already contained in
// the fetcher, so the cycle always completes and always records today's
// reference-zone date as fetched.
func (s *Service) Refresh(ctx context.Context) int {
	now := s.clock.Now()
	articles := s.fetcher.FetchAll(ctx, s.urls)
	sortByDate(articles)
	s.cache.Replace(articles, now, s.schedule.DateString(now))
	return len(articles)
}

// EnsureFresh runs a fetch cycle if the cache is empty or the scheduled
// hour has arrived without a fetch yet today. Called synchronously per
// request; a completed fetch sets the last-fetch date, which
// short-circuits further triggers that day.
func (s *Service) EnsureFresh(ctx context.Context) {
	articles, lastFetch := s.cache.Snapshot()
	if len(articles) == 0 || s.schedule.ShouldFetchToday(s.clock.Now(), lastFetch) {
		n := s.Refresh(ctx)
		log.Printf("on-demand fetch complete: %d articles", n)
	}
}

func (s *Service) Snapshot() ([]feed.Article, string) {
	return s.cache.Snapshot()
}

func (s *Service) Clear() {
	s.cache.Clear()
}

// Run fires a fetch cycle at the target hour every day until ctx is
// cancelled. A failed cycle is logged and the timer is re-armed for the
// next day regardless.
func (s *Service) Run(ctx context.Context) {
	for {
		next := s.schedule.NextFire(s.clock.Now())
		delay := next.Sub(s.clock.Now())
		log.Printf("next scheduled fetch at %s (in %s)", next.Format(time.RFC3339), delay.Round(time.Second))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		n := s.Refresh(ctx)
		log.Printf("scheduled fetch complete: %d articles", n)
	}
}

// sortByDate orders articles newest first. An article the feed parser
// could not date carries the zero time and therefore sorts last.
func sortByDate(articles []feed.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Published.After(articles[j].Published)
	})
}

package news

import (
	"fmt"
	"time"
)

// Clock abstracts time.Now so scheduling logic can be tested without
// waiting on the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Schedule evaluates the daily fetch hour against a fixed reference
// timezone, regardless of server locale.
type Schedule struct {
	loc  *time.Location
	hour int
}

func NewSchedule(timezone string, hour int) (*Schedule, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Schedule{loc: loc, hour: hour}, nil
}

// NextFire returns the next occurrence of the target hour in the
// reference zone. Wall-clock fields are re-derived in the zone rather
// than adding a fixed 24h, so daylight-saving transitions land on the
// correct local hour.
func (s *Schedule) NextFire(now time.Time) time.Time {
	local := now.In(s.loc)
	day := local.Day()
	if local.Hour() >= s.hour {
		day++
	}
	return time.Date(local.Year(), local.Month(), day, s.hour, 0, 0, 0, s.loc)
}

// ShouldFetchToday reports whether the catch-up path should run: the
// reference-zone hour equals the target hour and no fetch has completed
// yet today.
func (s *Schedule) ShouldFetchToday(now time.Time, lastFetchDate string) bool {
	local := now.In(s.loc)
	return local.Hour() == s.hour && lastFetchDate != s.DateString(now)
}

// DateString renders the reference-zone calendar date, the value stored
// as the cache's last-fetch marker.
func (s *Schedule) DateString(now time.Time) string {
	return now.In(s.loc).Format("2006-01-02")
}

package stats

import (
	"time"

	"contribution-rewards-backend/internal/domain"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// MonthWindow is the calendar month containing now, in now's location.
func MonthWindow(now time.Time) Window {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// YearWindow is the calendar year containing now, in now's location.
func YearWindow(now time.Time) Window {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}

// PeriodWindow returns nil for the unbounded all-time period.
func PeriodWindow(period domain.LeaderboardPeriod, now time.Time) *Window {
	switch period {
	case domain.LeaderboardMonthly:
		w := MonthWindow(now)
		return &w
	case domain.LeaderboardYearly:
		w := YearWindow(now)
		return &w
	}
	return nil
}

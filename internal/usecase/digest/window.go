package digest

import (
	"time"

	"absence-digest-bot/internal/domain"
)

// Window computes the half-open [start, end) range inspected for the given
// period, anchored to now in loc. Start is always midnight-aligned: the
// start of the day, the Monday of the ISO week, or the first of the month.
func Window(period domain.Period, now time.Time, loc *time.Location) domain.TimeWindow {
	now = now.In(loc)
	switch period {
	case domain.PeriodWeek:
		start := startOfDay(now).AddDate(0, 0, -mondayOffset(now.Weekday()))
		return domain.TimeWindow{Start: start, End: start.AddDate(0, 0, 7)}
	case domain.PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return domain.TimeWindow{Start: start, End: start.AddDate(0, 1, 0)}
	default:
		start := startOfDay(now)
		return domain.TimeWindow{Start: start, End: start.AddDate(0, 0, 1)}
	}
}

// IsAnnounceDay reports whether now falls on the window's first day, i.e.
// whether this invocation is the primary announcement rather than a
// catch-up run. Only month and day are compared, never the year; across a
// year rollover a week or month window can be misjudged.
func IsAnnounceDay(now, windowStart time.Time) bool {
	return now.Month() == windowStart.Month() && now.Day() == windowStart.Day()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOffset is the number of days since the most recent Monday.
func mondayOffset(d time.Weekday) int {
	return (int(d) + 6) % 7
}

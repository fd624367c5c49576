package digest

import (
	"time"

	"absence-digest-bot/internal/domain"
)

// TitleFilter decides whether an event title marks a leave event. The
// keyword is configuration; the engine only ever sees the predicate.
type TitleFilter func(title string) bool

// Qualifies reports whether event belongs in the current run's digest.
//
// On the primary day every event with a matching title qualifies. On a
// catch-up run only events created on the calendar date immediately before
// now qualify: those arrived after the primary announcement went out and
// have not been surfaced yet, while anything older was already covered.
func Qualifies(event domain.RawEvent, matches TitleFilter, primary bool, now time.Time) bool {
	if !matches(event.Title) {
		return false
	}
	if primary {
		return true
	}
	created := startOfDay(event.CreatedAt.In(now.Location()))
	yesterday := startOfDay(now).AddDate(0, 0, -1)
	return created.Equal(yesterday)
}

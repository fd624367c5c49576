package domain

import (
	"fmt"
	"time"
)

// Period selects how wide a range of calendar data one invocation inspects.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod validates a configured period value.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(raw), nil
	}
	return "", fmt.Errorf("unknown period %q, want day, week or month", raw)
}

// TimeWindow is the half-open [Start, End) range inspected for leave events.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window. End is exclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Identity is a member address usable both as a directory lookup key and as
// a calendar lookup key. Valid identities follow the given.family@domain
// convention.
type Identity string

// RawEvent is one calendar event as returned by the event source. For
// all-day events Start and End are the first and last day of the absence.
type RawEvent struct {
	Title     string
	IsAllDay  bool
	Start     time.Time
	End       time.Time
	CreatedAt time.Time
	Creator   Identity
}

// Digest is the composed announcement built by one invocation.
type Digest struct {
	Date    time.Time
	Window  TimeWindow
	Primary bool
	Lines   []string
	Text    string
}

package digest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"absence-digest-bot/internal/domain"
)

// ErrMalformedIdentity is returned when a creator address does not follow
// the given.family@domain convention.
var ErrMalformedIdentity = errors.New("identity does not match given.family@domain")

const (
	headerPrimary = "-Absentees-"
	headerCatchUp = "-Absentees added yesterday-"
	noAbsentees   = "No one is absent"

	labelAllDay  = "【ALL-DAY】"
	labelHalfDay = "【HALF-DAY】"
)

// DisplayName derives "family given" from a given.family@domain identity.
// The directory guarantees the shape for valid members; anything else is a
// data-quality problem upstream and is surfaced rather than dropped.
func DisplayName(id domain.Identity) (string, error) {
	addr := string(id)
	local, _, ok := strings.Cut(addr, "@")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMalformedIdentity, addr)
	}
	parts := strings.Split(local, ".")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("%w: %q", ErrMalformedIdentity, addr)
	}
	return parts[1] + " " + parts[0], nil
}

// FormatLine renders one qualifying event as a single digest line.
func FormatLine(event domain.RawEvent) (string, error) {
	name, err := DisplayName(event.Creator)
	if err != nil {
		return "", err
	}
	if event.IsAllDay {
		return fmt.Sprintf("%s %s %s〜%s all day",
			labelAllDay, name, monthDay(event.Start), monthDay(event.End)), nil
	}
	return fmt.Sprintf("%s %s %s %s〜%s",
		labelHalfDay, name, monthDay(event.Start), hourMinute(event.Start), hourMinute(event.End)), nil
}

func monthDay(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

func hourMinute(t time.Time) string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// ComposeDigest assembles the final message from the formatted lines.
// The second return value is false only for an empty catch-up run, the one
// case where nothing should be posted at all.
func ComposeDigest(lines []string, primary bool) (string, bool) {
	if primary {
		if len(lines) == 0 {
			return headerPrimary + "\n" + noAbsentees, true
		}
		return headerPrimary + "\n" + strings.Join(lines, "\n"), true
	}
	if len(lines) == 0 {
		return "", false
	}
	return headerCatchUp + "\n" + strings.Join(lines, "\n"), true
}

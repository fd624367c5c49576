package domain

import (
	"context"
	"time"
)

// Directory lists the roster of members whose calendars are scanned.
type Directory interface {
	ListActiveIdentities(ctx context.Context) ([]Identity, error)
}

// EventSource reads one member's calendar events inside a window. A member
// with no accessible calendar yields an empty slice, not an error.
type EventSource interface {
	GetEvents(ctx context.Context, id Identity, window TimeWindow) ([]RawEvent, error)
}

// Notifier delivers the digest text to the announcement channel.
type Notifier interface {
	Post(ctx context.Context, text string) error
}

// Cache is used for the once-per-day delivery guard.
type Cache interface {
	Once(key string, ttl time.Duration, fn func() error) error
}

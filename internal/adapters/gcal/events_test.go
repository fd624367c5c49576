package gcal

import (
	"testing"
	"time"

	"google.golang.org/api/calendar/v3"
)

var tokyo = time.FixedZone("JST", 9*60*60)

func TestMapEventAllDay(t *testing.T) {
	item := &calendar.Event{
		Summary: "有給休暇",
		Start:   &calendar.EventDateTime{Date: "2021-10-04"},
		// The API end date is exclusive: leave through 10/8 ends on 10/9.
		End:     &calendar.EventDateTime{Date: "2021-10-09"},
		Created: "2021-09-28T10:15:00+09:00",
		Creator: &calendar.EventCreator{Email: "yukiko.orui@example.com"},
	}

	event, err := mapEvent(item, tokyo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !event.IsAllDay {
		t.Fatalf("expected an all-day event")
	}
	if !event.Start.Equal(time.Date(2021, 10, 4, 0, 0, 0, 0, tokyo)) {
		t.Fatalf("unexpected start: %v", event.Start)
	}
	if !event.End.Equal(time.Date(2021, 10, 8, 0, 0, 0, 0, tokyo)) {
		t.Fatalf("end must be the last day of the absence, got %v", event.End)
	}
	if event.Creator != "yukiko.orui@example.com" {
		t.Fatalf("unexpected creator: %s", event.Creator)
	}
	if !event.CreatedAt.Equal(time.Date(2021, 9, 28, 10, 15, 0, 0, tokyo)) {
		t.Fatalf("unexpected created time: %v", event.CreatedAt)
	}
}

func TestMapEventTimed(t *testing.T) {
	item := &calendar.Event{
		Summary: "午前休暇",
		Start:   &calendar.EventDateTime{DateTime: "2021-10-21T10:00:00+09:00"},
		End:     &calendar.EventDateTime{DateTime: "2021-10-21T10:30:00+09:00"},
		Created: "2021-10-20T08:00:00+09:00",
		Creator: &calendar.EventCreator{Email: "yukiko.orui@example.com"},
	}

	event, err := mapEvent(item, tokyo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.IsAllDay {
		t.Fatalf("expected a timed event")
	}
	if !event.Start.Equal(time.Date(2021, 10, 21, 10, 0, 0, 0, tokyo)) {
		t.Fatalf("unexpected start: %v", event.Start)
	}
	if !event.End.Equal(time.Date(2021, 10, 21, 10, 30, 0, 0, tokyo)) {
		t.Fatalf("unexpected end: %v", event.End)
	}
}

func TestMapEventMissingTime(t *testing.T) {
	item := &calendar.Event{Summary: "壊れた予定"}
	if _, err := mapEvent(item, tokyo); err == nil {
		t.Fatalf("expected an error for an event without start/end")
	}
}

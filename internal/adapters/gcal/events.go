package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"absence-digest-bot/internal/domain"
)

// Source reads member calendars through the Google Calendar API. Member
// addresses double as calendar IDs.
type Source struct {
	svc *calendar.Service
	loc *time.Location
}

// New builds a read-only calendar client from a service-account credential.
func New(ctx context.Context, credentialsFile string, loc *time.Location) (*Source, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("calendar client: %w", err)
	}
	return &Source{svc: svc, loc: loc}, nil
}

var _ domain.EventSource = (*Source)(nil)

// GetEvents lists the identity's events inside the window. An identity
// whose calendar is missing or not shared yields no events, not an error.
func (s *Source) GetEvents(ctx context.Context, id domain.Identity, window domain.TimeWindow) ([]domain.RawEvent, error) {
	call := s.svc.Events.List(string(id)).
		TimeMin(window.Start.Format(time.RFC3339)).
		TimeMax(window.End.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	var out []domain.RawEvent
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			event, err := mapEvent(item, s.loc)
			if err != nil {
				return err
			}
			out = append(out, event)
		}
		return nil
	})
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusForbidden) {
			return nil, nil
		}
		return nil, fmt.Errorf("calendar %s: %w", id, err)
	}
	return out, nil
}

func mapEvent(item *calendar.Event, loc *time.Location) (domain.RawEvent, error) {
	start, allDay, err := parseEventTime(item.Start, loc)
	if err != nil {
		return domain.RawEvent{}, fmt.Errorf("event %q start: %w", item.Summary, err)
	}
	end, _, err := parseEventTime(item.End, loc)
	if err != nil {
		return domain.RawEvent{}, fmt.Errorf("event %q end: %w", item.Summary, err)
	}
	if allDay {
		// The API reports an exclusive end date for all-day events; shift
		// it back so End is the last day of the absence.
		end = end.AddDate(0, 0, -1)
	}

	var created time.Time
	if item.Created != "" {
		created, err = time.Parse(time.RFC3339, item.Created)
		if err != nil {
			return domain.RawEvent{}, fmt.Errorf("event %q created: %w", item.Summary, err)
		}
		created = created.In(loc)
	}

	var creator domain.Identity
	if item.Creator != nil {
		creator = domain.Identity(item.Creator.Email)
	}

	return domain.RawEvent{
		Title:     item.Summary,
		IsAllDay:  allDay,
		Start:     start,
		End:       end,
		CreatedAt: created,
		Creator:   creator,
	}, nil
}

func parseEventTime(dt *calendar.EventDateTime, loc *time.Location) (time.Time, bool, error) {
	if dt == nil {
		return time.Time{}, false, errors.New("missing event time")
	}
	if dt.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", dt.Date, loc)
		return t, true, err
	}
	t, err := time.Parse(time.RFC3339, dt.DateTime)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.In(loc), false, nil
}

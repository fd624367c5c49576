package digest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"absence-digest-bot/internal/domain"
	"absence-digest-bot/internal/infra/metrics"
)

// ErrNothingToAnnounce is returned by BuildDigest when a catch-up run finds
// no newly created leave events. The caller must not post anything.
var ErrNothingToAnnounce = errors.New("no newly added absences to announce")

// Service builds the absence digest for one invocation.
type Service struct {
	directory domain.Directory
	events    domain.EventSource
	matches   TitleFilter
	period    domain.Period
	loc       *time.Location
	log       zerolog.Logger
}

// NewService creates the digest engine.
func NewService(directory domain.Directory, events domain.EventSource, matches TitleFilter, period domain.Period, loc *time.Location, logger zerolog.Logger) *Service {
	return &Service{directory: directory, events: events, matches: matches, period: period, loc: loc, log: logger}
}

// BuildDigest computes the window for now, pulls every roster member's
// events, qualifies and formats them, and assembles the digest text.
// Line order follows roster order, then calendar order within a member.
func (s *Service) BuildDigest(ctx context.Context, now time.Time) (domain.Digest, error) {
	started := time.Now()
	defer func() { metrics.DigestBuildSeconds.Observe(time.Since(started).Seconds()) }()

	now = now.In(s.loc)
	window := Window(s.period, now, s.loc)
	primary := IsAnnounceDay(now, window.Start)

	identities, err := s.directory.ListActiveIdentities(ctx)
	if err != nil {
		return domain.Digest{}, fmt.Errorf("listing roster: %w", err)
	}

	var lines []string
	for _, id := range identities {
		metrics.IdentitiesScanned.Inc()
		events, err := s.events.GetEvents(ctx, id, window)
		if err != nil {
			// One broken calendar must not silence the whole digest.
			metrics.CalendarErrors.Inc()
			s.log.Warn().Err(err).Str("identity", string(id)).Msg("digest: calendar unavailable, skipping")
			continue
		}
		for _, event := range events {
			if !Qualifies(event, s.matches, primary, now) {
				continue
			}
			line, err := FormatLine(event)
			if err != nil {
				return domain.Digest{}, fmt.Errorf("formatting event %q: %w", event.Title, err)
			}
			lines = append(lines, line)
			metrics.AbsenceEvents.Inc()
		}
	}

	text, deliver := ComposeDigest(lines, primary)
	if !deliver {
		return domain.Digest{}, ErrNothingToAnnounce
	}

	return domain.Digest{
		Date:    startOfDay(now),
		Window:  window,
		Primary: primary,
		Lines:   lines,
		Text:    text,
	}, nil
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ErrInvalidTriggerTime is returned for trigger times not of the form HH:MM.
var ErrInvalidTriggerTime = errors.New("invalid trigger time, want HH:MM")

// Service owns the single recurring trigger for the daily announcement job.
type Service struct {
	cron *cron.Cron
	log  zerolog.Logger

	mu      sync.Mutex
	entries []cron.EntryID
}

// NewService creates a scheduler firing in the given location.
func NewService(loc *time.Location, logger zerolog.Logger) *Service {
	return &Service{cron: cron.New(cron.WithLocation(loc)), log: logger}
}

// Register installs the daily trigger at the given HH:MM wall-clock time.
// Every previously installed trigger is removed first, so repeated
// registration always leaves exactly one active entry.
func (s *Service) Register(triggerTime string, job func()) error {
	spec, err := CronSpec(triggerTime)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = s.entries[:0]

	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return fmt.Errorf("installing trigger: %w", err)
	}
	s.entries = append(s.entries, id)
	s.log.Info().Str("spec", spec).Msg("schedule: daily trigger installed")
	return nil
}

// Entries reports how many triggers are currently installed.
func (s *Service) Entries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Start begins firing triggers.
func (s *Service) Start() { s.cron.Start() }

// Stop halts the scheduler; the returned context is done once any running
// job has finished.
func (s *Service) Stop() context.Context { return s.cron.Stop() }

// CronSpec converts an HH:MM wall-clock time into a daily cron spec.
func CronSpec(triggerTime string) (string, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(triggerTime), ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTriggerTime, triggerTime)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTriggerTime, triggerTime)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTriggerTime, triggerTime)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTriggerTime, triggerTime)
	}
	return fmt.Sprintf("%d %d * * *", minute, hour), nil
}

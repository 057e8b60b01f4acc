// Package retention prunes old events on a schedule.
package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"crashvault/internal/event"
	"crashvault/pkg/log"
)

const (
	defaultSchedule   = "0 3 * * *"
	defaultMaxAgeDays = 30
)

// Config controls the sweeper. Retention is destructive, so it ships
// disabled.
type Config struct {
	Enabled    bool
	Schedule   string
	MaxAgeDays int
}

// Sweeper deletes events older than the retention window.
type Sweeper struct {
	cfg    Config
	events event.UseCase
	l      log.Logger
}

// New creates a sweeper, filling config defaults.
func New(cfg Config, events event.UseCase, l log.Logger) *Sweeper {
	if cfg.Schedule == "" {
		cfg.Schedule = defaultSchedule
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = defaultMaxAgeDays
	}
	return &Sweeper{
		cfg:    cfg,
		events: events,
		l:      l,
	}
}

// Run schedules the sweep and blocks until ctx is canceled. With
// retention disabled it returns immediately.
func (s *Sweeper) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.l.Debugf(ctx, "retention disabled")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.Schedule, func() { s.scheduledSweep(ctx) }); err != nil {
		return fmt.Errorf("retention schedule %q: %w", s.cfg.Schedule, err)
	}
	c.Start()
	s.l.Infof(ctx, "retention sweeper scheduled | schedule=%q | max_age_days=%d", s.cfg.Schedule, s.cfg.MaxAgeDays)

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

// Sweep removes events older than the window once and reports how many
// went away.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.cfg.MaxAgeDays)

	out, err := s.events.Prune(ctx, event.PruneInput{OlderThan: cutoff})
	if err != nil {
		return 0, err
	}
	return out.Removed, nil
}

func (s *Sweeper) scheduledSweep(ctx context.Context) {
	removed, err := s.Sweep(ctx)
	if err != nil {
		s.l.Errorf(ctx, "retention sweep: %v", err)
		return
	}
	s.l.Infof(ctx, "retention sweep complete | removed=%d", removed)
}

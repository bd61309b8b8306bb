// Package prune periodically removes stale saved properties.
package prune

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/akbarovs/uybaho/internal/metrics"
	"github.com/akbarovs/uybaho/internal/store"
)

// Scheduler runs the saved-properties prune job on a fixed interval.
type Scheduler struct {
	cron  *cron.Cron
	store store.Store
	ttl   time.Duration
	log   *slog.Logger
}

// NewScheduler creates a Scheduler that removes saved properties older
// than ttl, checking every interval.
func NewScheduler(
	s store.Store,
	interval time.Duration,
	ttl time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	sched := &Scheduler{
		cron:  c,
		store: s,
		ttl:   ttl,
		log:   log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), sched.run); err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins running the prune job on its schedule.
func (s *Scheduler) Start() {
	s.log.Info("prune scheduler started", "ttl", s.ttl.String())
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("prune scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) run() {
	if err := s.Prune(context.Background()); err != nil {
		s.log.Error("prune failed", "error", err)
	}
}

// Prune removes saved properties older than the configured TTL once.
func (s *Scheduler) Prune(ctx context.Context) error {
	cutoff := time.Now().Add(-s.ttl)

	removed, err := s.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if removed > 0 {
		metrics.SavedPrunedTotal.Add(float64(removed))
		s.log.Info("pruned saved properties", "removed", removed)
	}

	return nil
}

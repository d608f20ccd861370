package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/paimonbot/paimonbot/internal/metrics"
	"github.com/paimonbot/paimonbot/internal/store"
)

const (
	// DefaultSweepInterval is the time between retention sweeps.
	DefaultSweepInterval = 24 * time.Hour
	// DefaultRetention is how long an unused credential is kept.
	DefaultRetention = 120 * 24 * time.Hour
)

// Sweeper removes credentials unused for longer than the retention window.
type Sweeper struct {
	store     *store.Store
	logger    *slog.Logger
	metrics   metrics.Recorder
	interval  time.Duration
	retention time.Duration
}

// NewSweeper creates the retention sweeper. Zero interval and retention fall
// back to defaults.
func NewSweeper(st *store.Store, logger *slog.Logger, recorder metrics.Recorder, interval, retention time.Duration) *Sweeper {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Sweeper{
		store:     st,
		logger:    logger.With("component", "worker.sweeper"),
		metrics:   recorder,
		interval:  interval,
		retention: retention,
	}
}

// Run starts the sweep loop. An initial sweep runs at startup so restarts do
// not postpone expiry by a full interval. Blocks until context is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	s.logger.Info("retention sweeper started", "interval", s.interval, "retention", s.retention)

	s.sweepOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("retention sweeper stopping")
			return ctx.Err()
		case <-ticker.C:
			s.sweepOnce()
		}
	}
}

func (s *Sweeper) sweepOnce() {
	id := runID()
	removed := s.store.SweepExpired(time.Now().UTC(), s.retention)
	if removed > 0 {
		s.metrics.IncSweepRemoved(removed)
		s.logger.Info("swept expired user data", "run_id", id, "removed", removed, "remaining", s.store.Len())
	} else {
		s.logger.Debug("sweep found nothing to remove", "run_id", id, "users", s.store.Len())
	}
	s.metrics.SetUserCount(s.store.Len())
}

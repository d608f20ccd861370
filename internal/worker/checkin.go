package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/paimonbot/paimonbot/internal/service"
	"github.com/paimonbot/paimonbot/internal/store"
)

// DefaultCheckInInterval is the time between scheduled check-in rounds.
const DefaultCheckInInterval = 24 * time.Hour

// CheckInScheduler claims the daily reward for every opted-in user once per
// interval and reports the outcome through the notifier.
type CheckInScheduler struct {
	store    *store.Store
	genshin  *service.Genshin
	notifier Notifier
	logger   *slog.Logger
	interval time.Duration

	// optIn reports whether a user enabled scheduled check-in and whether
	// the honkai claim should run too. Nil means everyone, genshin only.
	optIn func(userID string) (enabled, honkai bool)
}

// NewCheckInScheduler creates the daily check-in scheduler.
func NewCheckInScheduler(st *store.Store, genshin *service.Genshin, notifier Notifier, logger *slog.Logger, interval time.Duration, optIn func(string) (bool, bool)) *CheckInScheduler {
	if interval <= 0 {
		interval = DefaultCheckInInterval
	}
	return &CheckInScheduler{
		store:    st,
		genshin:  genshin,
		notifier: notifier,
		logger:   logger.With("component", "worker.checkin"),
		interval: interval,
		optIn:    optIn,
	}
}

// Run starts the scheduler loop. Blocks until context is cancelled.
func (w *CheckInScheduler) Run(ctx context.Context) error {
	w.logger.Info("check-in scheduler started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("check-in scheduler stopping")
			return ctx.Err()
		case <-ticker.C:
			w.claimOnce(ctx)
		}
	}
}

func (w *CheckInScheduler) claimOnce(ctx context.Context) {
	id := runID()
	users := w.store.UserIDs()
	claimed := 0

	for _, userID := range users {
		if ctx.Err() != nil {
			return
		}
		honkai := false
		if w.optIn != nil {
			var enabled bool
			enabled, honkai = w.optIn(userID)
			if !enabled {
				continue
			}
		}

		reply := w.genshin.ClaimDailyReward(ctx, userID, honkai, true)
		if reply == nil {
			continue
		}
		if err := w.notifier.Notify(ctx, userID, reply); err != nil {
			w.logger.Warn("check-in result delivery failed", "run_id", id, "user_id", userID, "error", err)
			continue
		}
		if !reply.Error {
			claimed++
		}
		spread(ctx, time.Second)
	}
	w.logger.Info("check-in round finished", "run_id", id, "users", len(users), "claimed", claimed)
}

package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/paimonbot/paimonbot/internal/service"
	"github.com/paimonbot/paimonbot/internal/store"
)

// DefaultNotesInterval is the time between resin-alert polls.
const DefaultNotesInterval = 2 * time.Hour

// NotesWatcher polls every opted-in user's real-time notes and pushes an
// alert when resin crosses the threshold. Polls never touch the records'
// usage time, so a dormant user still ages out.
type NotesWatcher struct {
	store    *store.Store
	genshin  *service.Genshin
	notifier Notifier
	logger   *slog.Logger
	interval time.Duration

	// optIn reports whether a user wants scheduled alerts. Nil means all.
	optIn func(userID string) bool
}

// NewNotesWatcher creates the resin alert watcher.
func NewNotesWatcher(st *store.Store, genshin *service.Genshin, notifier Notifier, logger *slog.Logger, interval time.Duration, optIn func(string) bool) *NotesWatcher {
	if interval <= 0 {
		interval = DefaultNotesInterval
	}
	return &NotesWatcher{
		store:    st,
		genshin:  genshin,
		notifier: notifier,
		logger:   logger.With("component", "worker.notes"),
		interval: interval,
		optIn:    optIn,
	}
}

// Run starts the poll loop. Blocks until context is cancelled.
func (w *NotesWatcher) Run(ctx context.Context) error {
	w.logger.Info("notes watcher started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("notes watcher stopping")
			return ctx.Err()
		case <-ticker.C:
			w.pollOnce(ctx)
		}
	}
}

func (w *NotesWatcher) pollOnce(ctx context.Context) {
	id := runID()
	users := w.store.UserIDs()
	alerts := 0

	for _, userID := range users {
		if ctx.Err() != nil {
			return
		}
		if w.optIn != nil && !w.optIn(userID) {
			continue
		}

		reply := w.genshin.RealtimeNotes(ctx, userID, true)
		if reply == nil {
			// Resin below threshold, nothing to say.
			continue
		}
		if reply.Error {
			// The dispatcher already logged the cause.
			continue
		}
		if err := w.notifier.Notify(ctx, userID, reply); err != nil {
			w.logger.Warn("resin alert delivery failed", "run_id", id, "user_id", userID, "error", err)
			continue
		}
		alerts++
		spread(ctx, time.Second)
	}
	w.logger.Info("notes poll finished", "run_id", id, "users", len(users), "alerts", alerts)
}

// Package worker runs the background loops: the retention sweeper, the resin
// alert watcher and the daily check-in scheduler. Each loop blocks in Run
// until its context is cancelled; every pass carries a ULID run id so log
// lines of one pass can be correlated.
package worker

import (
	"context"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/paimonbot/paimonbot/internal/service"
)

// Notifier delivers a dispatched reply to a user out of band. Scheduled
// loops push through it instead of answering a request.
type Notifier interface {
	Notify(ctx context.Context, userID string, reply *service.Reply) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, userID string, reply *service.Reply) error

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, userID string, reply *service.Reply) error {
	return f(ctx, userID, reply)
}

// runID returns a fresh ULID for one worker pass.
func runID() string {
	return ulid.MustNew(ulid.Now(), ulid.DefaultEntropy()).String()
}

// spread sleeps a small random slice of interval so per-user calls inside a
// pass do not hammer the upstream at once.
func spread(ctx context.Context, max time.Duration) {
	if max <= 0 {
		return
	}
	d := time.Duration(rand.Int63n(int64(max)))
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

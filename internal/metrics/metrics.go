// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Dispatch metrics. outcome: "ok", "rejected" (local validation) or "failed".
	IncDispatch(op, outcome string)
	ObserveDispatchDuration(op string, duration time.Duration)

	// Check-in retry attempts on the ambiguous zero-retcode condition.
	IncCheckInRetry()

	// Store metrics
	IncSweepRemoved(count int)
	SetUserCount(count int)

	// Showcase cache metrics
	IncShowcaseCacheHit()
	IncShowcaseCacheMiss()
}

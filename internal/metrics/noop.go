package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncDispatch is a no-op.
func (n *NoopRecorder) IncDispatch(op, outcome string) {}

// ObserveDispatchDuration is a no-op.
func (n *NoopRecorder) ObserveDispatchDuration(op string, duration time.Duration) {}

// IncCheckInRetry is a no-op.
func (n *NoopRecorder) IncCheckInRetry() {}

// IncSweepRemoved is a no-op.
func (n *NoopRecorder) IncSweepRemoved(count int) {}

// SetUserCount is a no-op.
func (n *NoopRecorder) SetUserCount(count int) {}

// IncShowcaseCacheHit is a no-op.
func (n *NoopRecorder) IncShowcaseCacheHit() {}

// IncShowcaseCacheMiss is a no-op.
func (n *NoopRecorder) IncShowcaseCacheMiss() {}

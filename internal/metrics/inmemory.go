package metrics

import (
	"sync"
	"time"
)

// InMemoryRecorder is a Recorder backed by plain counters. Used in tests
// and for the debug snapshot endpoint.
type InMemoryRecorder struct {
	mu           sync.Mutex
	dispatches   map[string]int64 // "op/outcome" -> count
	retries      int64
	sweepRemoved int64
	userCount    int64
	cacheHits    int64
	cacheMisses  int64
}

// NewInMemory returns an empty InMemoryRecorder.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{dispatches: make(map[string]int64)}
}

// IncDispatch counts one dispatched operation by outcome.
func (r *InMemoryRecorder) IncDispatch(op, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dispatches[op+"/"+outcome]++
}

// ObserveDispatchDuration is recorded only as a count-free no-op here.
func (r *InMemoryRecorder) ObserveDispatchDuration(op string, duration time.Duration) {}

// IncCheckInRetry counts one retry attempt.
func (r *InMemoryRecorder) IncCheckInRetry() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retries++
}

// IncSweepRemoved counts records removed by sweeps.
func (r *InMemoryRecorder) IncSweepRemoved(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepRemoved += int64(count)
}

// SetUserCount records the current number of stored users.
func (r *InMemoryRecorder) SetUserCount(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userCount = int64(count)
}

// IncShowcaseCacheHit counts one showcase cache hit.
func (r *InMemoryRecorder) IncShowcaseCacheHit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheHits++
}

// IncShowcaseCacheMiss counts one showcase cache miss.
func (r *InMemoryRecorder) IncShowcaseCacheMiss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cacheMisses++
}

// Dispatches returns the count recorded for an op/outcome pair.
func (r *InMemoryRecorder) Dispatches(op, outcome string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dispatches[op+"/"+outcome]
}

// CheckInRetries returns the total retry attempts recorded.
func (r *InMemoryRecorder) CheckInRetries() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retries
}

// SweepRemoved returns the total records removed by sweeps.
func (r *InMemoryRecorder) SweepRemoved() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepRemoved
}

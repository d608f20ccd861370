package service

import (
	"context"
	"errors"
	"time"

	"github.com/paimonbot/paimonbot/internal/hoyo"
)

const (
	// DefaultMaxAttempts is the default number of check-in attempts.
	DefaultMaxAttempts = 5

	// DefaultRetryDelay is the pause between attempts.
	DefaultRetryDelay = 500 * time.Millisecond
)

// RetryPolicy retries an operation on transient failures. Only errors the
// Retryable predicate accepts trigger another attempt; everything else
// returns immediately.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
	Retryable   func(error) bool

	// OnRetry is called before each re-attempt, if set.
	OnRetry func(attempt int, err error)
}

// DefaultRetryPolicy retries the phantom check-in failure: the API reports
// success (retcode 0) but the reward is not registered.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultRetryDelay,
		Retryable:   IsPhantomSuccess,
	}
}

// IsPhantomSuccess reports whether err is an API error with retcode 0, the
// "succeeded but did not register" case.
func IsPhantomSuccess(err error) bool {
	var apiErr *hoyo.APIError
	return errors.As(err, &apiErr) && apiErr.Retcode == 0
}

// Do runs fn until it succeeds, fails non-retryably, attempts run out or the
// context is done. The last error is returned.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		if p.OnRetry != nil {
			p.OnRetry(attempt, err)
		}
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

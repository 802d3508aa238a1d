package storage

import (
	"context"
	"time"
)

// Retry policy for opening the index while the indexer daemon holds the
// write lock. Contention from a batch write resolves within seconds, so a
// short capped backoff recovers without blocking the caller unboundedly.
const (
	DefaultMaxAttempts  = 5
	DefaultInitialDelay = 100 * time.Millisecond
	DefaultMaxDelay     = 1600 * time.Millisecond
)

// RetryConfig configures exponential backoff retry behavior
type RetryConfig struct {
	MaxAttempts  int                 // Maximum number of open attempts
	InitialDelay time.Duration       // Delay after the first failed attempt
	MaxDelay     time.Duration       // Cap on the per-attempt delay
	Sleep        func(time.Duration) // nil means time.Sleep; tests inject a fake
}

// DefaultRetryConfig returns the retry policy used for read-only opens.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
		MaxDelay:     DefaultMaxDelay,
	}
}

func (c RetryConfig) sleep(d time.Duration) {
	if c.Sleep != nil {
		c.Sleep(d)
		return
	}
	time.Sleep(d)
}

// retryWithBackoff executes fn with exponential backoff. Errors rejected by
// retryable fail immediately; retryable ones are re-attempted with a doubling,
// clamped delay until the attempt budget runs out. The attempt count is
// returned alongside the final error.
func retryWithBackoff[T any](ctx context.Context, config RetryConfig, retryable func(error) bool, fn func() (T, error)) (T, int, error) {
	var zero T
	var lastErr error
	delay := config.InitialDelay

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, attempt, nil
		}
		lastErr = err

		if !retryable(err) {
			return zero, attempt, err
		}

		// Don't keep waiting on a cancelled context
		if ctx.Err() != nil {
			return zero, attempt, ctx.Err()
		}

		config.sleep(delay)
		delay *= 2
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return zero, config.MaxAttempts, lastErr
}

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSleeper records requested delays without actually sleeping.
type fakeSleeper struct {
	delays []time.Duration
}

func (f *fakeSleeper) sleep(d time.Duration) {
	f.delays = append(f.delays, d)
}

func testRetryConfig(s *fakeSleeper) RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.Sleep = s.sleep
	return cfg
}

func alwaysRetry(error) bool { return true }
func neverRetry(error) bool  { return false }

func TestRetryWithBackoff_Success(t *testing.T) {
	sleeper := &fakeSleeper{}

	result, attempts, err := retryWithBackoff(context.Background(), testRetryConfig(sleeper), alwaysRetry, func() (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, sleeper.delays)
}

func TestRetryWithBackoff_TransientThenSuccess(t *testing.T) {
	sleeper := &fakeSleeper{}
	transient := errors.New("database is locked")

	calls := 0
	result, attempts, err := retryWithBackoff(context.Background(), testRetryConfig(sleeper), alwaysRetry, func() (string, error) {
		calls++
		if calls < 3 {
			return "", transient
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, sleeper.delays)
}

func TestRetryWithBackoff_Exhaustion(t *testing.T) {
	sleeper := &fakeSleeper{}
	transient := errors.New("database is locked")

	_, attempts, err := retryWithBackoff(context.Background(), testRetryConfig(sleeper), alwaysRetry, func() (int, error) {
		return 0, transient
	})

	require.Error(t, err)
	assert.Equal(t, transient, err)
	assert.Equal(t, DefaultMaxAttempts, attempts)

	// Delay doubles per attempt and clamps at the cap.
	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
	}
	assert.Equal(t, want, sleeper.delays)
}

func TestRetryWithBackoff_DelayClampsAtMax(t *testing.T) {
	sleeper := &fakeSleeper{}
	cfg := testRetryConfig(sleeper)
	cfg.MaxAttempts = 7

	_, _, err := retryWithBackoff(context.Background(), cfg, alwaysRetry, func() (int, error) {
		return 0, errors.New("database is busy")
	})

	require.Error(t, err)
	require.Len(t, sleeper.delays, 7)
	assert.Equal(t, 1600*time.Millisecond, sleeper.delays[5])
	assert.Equal(t, 1600*time.Millisecond, sleeper.delays[6])
}

func TestRetryWithBackoff_FatalFailsImmediately(t *testing.T) {
	sleeper := &fakeSleeper{}
	fatal := errors.New("file is not a database")

	calls := 0
	_, attempts, err := retryWithBackoff(context.Background(), testRetryConfig(sleeper), neverRetry, func() (int, error) {
		calls++
		return 0, fatal
	})

	require.Error(t, err)
	assert.Equal(t, fatal, err)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
	assert.Empty(t, sleeper.delays)
}

func TestRetryWithBackoff_CancelledContext(t *testing.T) {
	sleeper := &fakeSleeper{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := retryWithBackoff(ctx, testRetryConfig(sleeper), alwaysRetry, func() (int, error) {
		return 0, errors.New("database is locked")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sleeper.delays)
}

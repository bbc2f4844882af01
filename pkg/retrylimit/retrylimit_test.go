package retrylimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetryMaxSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		return nil
	}, nil, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetryMaxRecovers(t *testing.T) {
	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	}, nil, 3)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestWithRetryMaxExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("hard failure")
	calls := 0
	err := WithRetryMax(context.Background(), func() error {
		calls++
		return wantErr
	}, nil, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, calls)
}

func TestWithRetryMaxHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := WithRetryMax(ctx, func() error {
		calls++
		return nil
	}, nil, 3)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, calls)
}

func TestAdaptiveLimiterBacksOffOnFailure(t *testing.T) {
	l := NewAdaptiveLimiter(4, 1, 8, 1, 0.5)

	l.Failure()
	assert.Equal(t, 2.0, l.CurrentLimit())

	l.Failure()
	l.Failure()
	assert.Equal(t, 1.0, l.CurrentLimit(), "never drops below the floor")
}

func TestAdaptiveLimiterHoldsAfterRecentError(t *testing.T) {
	l := NewAdaptiveLimiter(4, 1, 8, 1, 0.5)

	l.Failure()
	l.Success() // within the quiet period, no raise
	assert.Equal(t, 2.0, l.CurrentLimit())
}

func TestAdaptiveLimiterGrowsWhenQuiet(t *testing.T) {
	l := NewAdaptiveLimiter(2, 1, 4, 1, 0.5)
	l.lastError = time.Now().Add(-time.Minute)

	l.Success()
	assert.Equal(t, 3.0, l.CurrentLimit())

	l.Success()
	l.Success()
	assert.Equal(t, 4.0, l.CurrentLimit(), "capped at the ceiling")
}

package ai

import (
	"context"

	"github.com/airai75/harubot/pkg/retrylimit"
)

const generateAttempts = 3

type retryProvider struct {
	inner Provider
	lim   *retrylimit.AdaptiveLimiter
}

// WithRetry wraps a provider so transient generation failures are retried a
// few times before the caller sees an error. Attempts stay bounded: a dead
// upstream must fail the current tick, not stall the loop.
func WithRetry(p Provider) Provider {
	return &retryProvider{
		inner: p,
		lim:   retrylimit.NewAdaptiveLimiter(2, 1, 5, 1, 0.5),
	}
}

func (r *retryProvider) Generate(ctx context.Context, messages []Message) (string, error) {
	var out string
	err := retrylimit.WithRetryMax(ctx, func() error {
		reply, err := r.inner.Generate(ctx, messages)
		if err != nil {
			return err
		}
		out = reply
		return nil
	}, r.lim, generateAttempts)
	return out, err
}

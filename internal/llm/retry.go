package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retryClass buckets errors by how the retry loop should treat them.
type retryClass int

const (
	retryNo     retryClass = iota // permanent, give up
	retryOnce                     // one second chance, then give up
	retryAlways                   // transient, keep going until attempts run out
)

func classifyForRetry(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNo
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		// Truncation is a budget problem, retrying reproduces it.
		return retryNo
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}

	// Rate limits, 5xx, and anything else (network) are transient.
	return retryAlways
}

// retryProvider decorates a Provider with bounded retries: exponential
// backoff with jitter, a rate limit's Retry-After honored when given.
type retryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p with retry handling per cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retryProvider{inner: p, cfg: cfg}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	secondChanceUsed := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyForRetry(err) {
		case retryNo:
			return nil, err
		case retryOnce:
			if secondChanceUsed {
				return nil, err
			}
			secondChanceUsed = true
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waitFor(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *retryProvider) waitFor(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.cfg.InitialWait)
	for i := 0; i < attempt; i++ {
		wait *= r.cfg.Multiplier
	}
	wait = min(wait, float64(r.cfg.MaxWait))

	// ±20% jitter so concurrent callers don't stampede.
	wait *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(max(wait, 0))
}

package llm

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter. Invalid responses get a single retry.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	log    *slog.Logger
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) *RetryProvider {
	return &RetryProvider{inner: p, config: cfg, log: slog.New(slog.DiscardHandler)}
}

// WithLogger returns r reporting retries to log.
func (r *RetryProvider) WithLogger(log *slog.Logger) *RetryProvider {
	if log != nil {
		r.log = log
	}
	return r
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	attempts := max(r.config.MaxAttempts, 1)
	invalidRetried := false

	var lastErr error
	for attempt := range attempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !IsRetryable(err) {
			return nil, err
		}
		if isInvalidResponse(err) {
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		}
		if attempt == attempts-1 {
			break
		}

		wait := r.config.backoff(attempt, err)
		r.log.Debug("retrying LLM request", "model", r.inner.ModelID(), "attempt", attempt+1, "wait", wait, "err", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff computes the wait before retrying after the given attempt. A
// rate limit's RetryAfter wins over the exponential schedule.
func (c RetryConfig) backoff(attempt int, err error) time.Duration {
	if ra := retryAfter(err); ra > 0 {
		return ra
	}

	wait := float64(c.InitialWait) * math.Pow(c.Multiplier, float64(attempt))
	if c.MaxWait > 0 {
		wait = min(wait, float64(c.MaxWait))
	}

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(wait, 0))
}

package llm

import (
	"context"
	"errors"
	"math"
	"time"
)

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialWait is the backoff base; the wait doubles each attempt.
	InitialWait time.Duration

	// MaxWait caps a single backoff wait.
	MaxWait time.Duration

	// RateLimitFloor is the minimum wait after a rate-limit error.
	RateLimitFloor time.Duration
}

// DefaultRetryConfig mirrors the engine's policy: one call plus two
// retries with a doubling delay.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialWait:    time.Second,
		MaxWait:        10 * time.Second,
		RateLimitFloor: 2 * time.Second,
	}
}

// RetryClient decorates a Client with bounded-loop retries and
// exponential backoff on qualifying transient errors.
type RetryClient struct {
	inner  Client
	config RetryConfig
}

// WithRetry wraps a Client with retry logic.
func WithRetry(c Client, cfg RetryConfig) *RetryClient {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryClient{inner: c, config: cfg}
}

func (r *RetryClient) Complete(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryClient) Models(ctx context.Context) ([]ModelInfo, error) {
	return r.inner.Models(ctx)
}

func (r *RetryClient) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether another attempt could help. Auth failures
// and context cancellation never qualify; rate limits, transport
// failures, and malformed responses do.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var auth *ErrAuth
	return !errors.As(err, &auth)
}

// backoff computes the wait before the next attempt: the base delay
// doubles per attempt, capped at MaxWait, with a floor for rate limits.
func (r *RetryClient) backoff(attempt int, err error) time.Duration {
	wait := time.Duration(float64(r.config.InitialWait) * math.Pow(2, float64(attempt)))
	if r.config.MaxWait > 0 && wait > r.config.MaxWait {
		wait = r.config.MaxWait
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		if rl.RetryAfter > wait {
			wait = rl.RetryAfter
		}
		if wait < r.config.RateLimitFloor {
			wait = r.config.RateLimitFloor
		}
	}
	return wait
}

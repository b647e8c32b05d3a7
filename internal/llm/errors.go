package llm

import (
	"fmt"
	"time"
)

// ErrAuth indicates the credential was rejected (HTTP 401) or is
// missing entirely. Never retried.
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return "authentication failed"
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrTransport indicates a network-level failure or a transient server
// error (5xx) calling the remote endpoint.
type ErrTransport struct {
	Status int
	Err    error
}

func (e *ErrTransport) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport error (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrMalformed indicates the model returned content that could not be
// parsed as the expected JSON shape, even after repair.
type ErrMalformed struct {
	Content string
	Err     error
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *ErrMalformed) Unwrap() error { return e.Err }

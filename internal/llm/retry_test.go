package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialWait:    time.Millisecond,
		MaxWait:        5 * time.Millisecond,
		RateLimitFloor: 2 * time.Millisecond,
	}
}

func TestRetry_SucceedsAfterTransient(t *testing.T) {
	mock := NewMockClient(
		MockResponse{Err: &ErrTransport{Err: fmt.Errorf("connection reset")}},
		MockResponse{Err: &ErrRateLimit{Err: fmt.Errorf("429")}},
		MockResponse{Content: `{"ok":true}`},
	)
	c := WithRetry(mock, fastRetryConfig(3))

	resp, err := c.Complete(context.Background(), Request{User: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content != `{"ok":true}` {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 attempts, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAndSurfacesLastError(t *testing.T) {
	mock := NewMockClient(
		MockResponse{Err: &ErrTransport{Err: fmt.Errorf("down")}},
	)
	c := WithRetry(mock, fastRetryConfig(3))

	_, err := c.Complete(context.Background(), Request{User: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}
	var te *ErrTransport
	if !errors.As(err, &te) {
		t.Errorf("expected ErrTransport, got %T", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 attempts, got %d", mock.CallCount())
	}
}

func TestRetry_AuthNotRetried(t *testing.T) {
	mock := NewMockClient(
		MockResponse{Err: &ErrAuth{}},
		MockResponse{Content: "{}"},
	)
	c := WithRetry(mock, fastRetryConfig(3))

	_, err := c.Complete(context.Background(), Request{User: "hi"})
	var auth *ErrAuth
	if !errors.As(err, &auth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("auth errors must not be retried; got %d attempts", mock.CallCount())
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	mock := NewMockClient(MockResponse{Err: context.Canceled})
	c := WithRetry(mock, fastRetryConfig(3))

	_, err := c.Complete(context.Background(), Request{User: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 attempt, got %d", mock.CallCount())
	}
}

func TestBackoff_DoublesAndFloorsRateLimit(t *testing.T) {
	c := WithRetry(NewMockClient(), RetryConfig{
		MaxAttempts:    3,
		InitialWait:    100 * time.Millisecond,
		MaxWait:        time.Second,
		RateLimitFloor: 2 * time.Second,
	})

	transport := &ErrTransport{Err: fmt.Errorf("x")}
	if got := c.backoff(0, transport); got != 100*time.Millisecond {
		t.Errorf("attempt 0: got %s", got)
	}
	if got := c.backoff(1, transport); got != 200*time.Millisecond {
		t.Errorf("attempt 1: got %s", got)
	}
	if got := c.backoff(5, transport); got != time.Second {
		t.Errorf("expected MaxWait cap, got %s", got)
	}

	// Rate limits wait at least the floor, longer if the provider says so.
	rl := &ErrRateLimit{Err: fmt.Errorf("429")}
	if got := c.backoff(0, rl); got != 2*time.Second {
		t.Errorf("rate limit floor: got %s", got)
	}
	rl.RetryAfter = 5 * time.Second
	if got := c.backoff(0, rl); got != 5*time.Second {
		t.Errorf("retry-after override: got %s", got)
	}
}

func TestResolveModel(t *testing.T) {
	m := ResolveModel("", nil)
	if !m.Default || m.Kind != KindPredefined {
		t.Errorf("empty ID should resolve to the predefined default, got %+v", m)
	}

	m = ResolveModel("anthropic/claude-3-haiku", nil)
	if m.Kind != KindPredefined || m.Name != "Claude 3 Haiku" {
		t.Errorf("predefined lookup failed: %+v", m)
	}

	m = ResolveModel("some/new-model", []ModelInfo{{ID: "some/new-model", Name: "New Model"}})
	if m.Kind != KindDynamic || m.Name != "New Model" {
		t.Errorf("dynamic lookup failed: %+v", m)
	}

	m = ResolveModel("gone/model", nil)
	if m.Kind != KindDynamic || m.ID != "gone/model" {
		t.Errorf("unknown IDs should still resolve as dynamic: %+v", m)
	}
}

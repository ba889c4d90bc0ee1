package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientErrors(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: json.RawMessage(`{"title":"Fractions Check"}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"title":"Fractions Check"}` {
		t.Fatalf("content = %s", resp.Content)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("call count = %d, want 3", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider()
	for i := 0; i < 4; i++ {
		mock.AddResponse(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	}
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("call count = %d, want 3", mock.CallCount())
	}
}

func TestRetryInvalidResponseGetsOneSecondChance(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Content: []byte("not json"), Err: errors.New("parse")}},
		MockResponse{Err: &ErrInvalidResponse{Content: []byte("still not json"), Err: errors.New("parse")}},
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("call count = %d, want 2 (one retry only)", mock.CallCount())
	}
}

func TestRetryMaxTokensIsPermanent(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: []byte(`{"qu`)}},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("err = %v, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	r := &retryProvider{cfg: fastRetry(3)}
	wait := r.waitFor(0, &ErrRateLimit{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Fatalf("wait = %v, want 42ms", wait)
	}
}

func TestRetryBackoffIsBoundedByMaxWait(t *testing.T) {
	r := &retryProvider{cfg: RetryConfig{
		MaxAttempts: 10,
		InitialWait: time.Second,
		MaxWait:     2 * time.Second,
		Multiplier:  3.0,
	}}
	// Attempt 5 would be 243s unbounded; jitter widens by at most 20%.
	wait := r.waitFor(5, errors.New("transient"))
	if wait > 2400*time.Millisecond {
		t.Fatalf("wait = %v, want <= 2.4s", wait)
	}
	if wait < 1600*time.Millisecond {
		t.Fatalf("wait = %v, want >= 1.6s", wait)
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, fastRetry(3))

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("call count = %d, want 1", mock.CallCount())
	}
}

package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func fastConfig() *Config {
	return &Config{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), fastConfig(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	attempts := 0
	permanent := errors.New("unknown table: lineup")
	err := Do(context.Background(), fastConfig(), func() error {
		attempts++
		return permanent
	})

	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected no retries on permanent error, got %d attempts", attempts)
	}
}

func TestDo_ExhaustsRetries(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), fastConfig(), func() error {
		attempts++
		return errors.New("503 service unavailable")
	})

	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 4 { // initial attempt + 3 retries
		t.Errorf("expected 4 attempts, got %d", attempts)
	}
}

func TestDo_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	cfg := &Config{
		MaxRetries:   5,
		InitialDelay: 50 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2.0,
	}

	err := Do(ctx, cfg, func() error {
		attempts++
		cancel()
		return errors.New("timeout")
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 1 {
		t.Errorf("expected 1 attempt before cancellation, got %d", attempts)
	}
}

func TestDoWithResult_ReturnsValue(t *testing.T) {
	attempts := 0
	got, err := DoWithResult(context.Background(), fastConfig(), func() ([]string, error) {
		attempts++
		if attempts < 2 {
			return nil, errors.New("i/o timeout")
		}
		return []string{"HH", "OB"}, nil
	})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(got) != 2 || got[0] != "HH" {
		t.Errorf("unexpected result: %v", got)
	}
}

type explicitErr struct {
	retryable bool
}

func (e *explicitErr) Error() string     { return "explicit" }
func (e *explicitErr) IsRetryable() bool { return e.retryable }

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: true},
		{name: "rate limit", err: errors.New("429 Too Many Requests"), want: true},
		{name: "server error", err: fmt.Errorf("store returned 502"), want: true},
		{name: "permanent", err: errors.New("invalid column name"), want: false},
		{name: "explicit retryable", err: &explicitErr{retryable: true}, want: true},
		{name: "explicit permanent with retryable text", err: &explicitErr{retryable: false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

package util

import (
	"context"
	"errors"
	"testing"
)

func TestRetryWithContextSucceedsAfterFailures(t *testing.T) {
	calls := 0
	got, err := RetryWithContext(context.Background(), 3, func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("RetryWithContext() error = %v", err)
	}
	if got != 42 || calls != 3 {
		t.Errorf("RetryWithContext() = %d after %d calls, want 42 after 3", got, calls)
	}
}

func TestRetryWithContextExhausted(t *testing.T) {
	wantErr := errors.New("always fails")
	_, err := RetryWithContext(context.Background(), 2, func(ctx context.Context) (int, error) {
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("RetryWithContext() error = %v, want %v", err, wantErr)
	}
}

func TestRetryWithContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := RetryWithContext(ctx, 5, func(ctx context.Context) (int, error) {
		calls++
		return 0, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RetryWithContext() error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("fn called %d times after cancellation, want 0", calls)
	}
}

func TestRetryErrWithContextStopsOnCancellationError(t *testing.T) {
	calls := 0
	err := RetryErrWithContext(context.Background(), 5, func(ctx context.Context) error {
		calls++
		return context.DeadlineExceeded
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("RetryErrWithContext() error = %v, want deadline exceeded", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1 (no retry on cancellation)", calls)
	}
}

func TestRetryErrWithContextDefaultsTries(t *testing.T) {
	calls := 0
	_ = RetryErrWithContext(context.Background(), 0, func(ctx context.Context) error {
		calls++
		return errors.New("fail")
	})
	if calls != 1 {
		t.Errorf("fn called %d times with maxTries 0, want 1", calls)
	}
}

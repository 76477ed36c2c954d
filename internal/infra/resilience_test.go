package infra

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Deduplicator Tests
// =============================================================================

func TestDeduplicatorSingleCall(t *testing.T) {
	d := NewDeduplicator()

	result, shared, err := d.Do(context.Background(), "k", func() (any, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if shared {
		t.Error("single caller should not be marked shared")
	}
	if result != 42 {
		t.Errorf("result = %v, want 42", result)
	}
	if d.InFlight() != 0 {
		t.Errorf("InFlight = %d, want 0 after completion", d.InFlight())
	}
}

func TestDeduplicatorCoalesces(t *testing.T) {
	d := NewDeduplicator()

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _, _ = d.Do(context.Background(), "k", func() (any, error) {
			close(started)
			<-release
			calls.Add(1)
			return "shared", nil
		})
	}()

	<-started

	var sharedCount atomic.Int32
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, shared, err := d.Do(context.Background(), "k", func() (any, error) {
				calls.Add(1)
				return "duplicate", nil
			})
			if err != nil {
				t.Errorf("Do failed: %v", err)
			}
			if shared {
				sharedCount.Add(1)
			}
			if result != "shared" {
				t.Errorf("result = %v, want the first caller's value", result)
			}
		}()
	}

	// Give the waiters a moment to register before releasing.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("fn executed %d times, want 1", calls.Load())
	}
	if sharedCount.Load() != 5 {
		t.Errorf("shared count = %d, want 5", sharedCount.Load())
	}
}

func TestDeduplicatorErrorShared(t *testing.T) {
	d := NewDeduplicator()
	wantErr := errors.New("upstream down")

	_, _, err := d.Do(context.Background(), "k", func() (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want the fn error", err)
	}
}

func TestDeduplicatorContextCancel(t *testing.T) {
	d := NewDeduplicator()

	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go func() {
		_, _, _ = d.Do(context.Background(), "k", func() (any, error) {
			close(started)
			<-release
			return nil, nil
		})
	}()

	<-started

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := d.Do(cancelCtx, "k", func() (any, error) { return nil, nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// =============================================================================
// CircuitBreaker Tests
// =============================================================================

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	cb := NewCircuitBreakerWithConfig(3, time.Minute, 1)

	for i := 0; i < 2; i++ {
		cb.RecordFailure()
		if !cb.Allow() {
			t.Fatalf("breaker opened after %d failures, threshold is 3", i+1)
		}
	}

	cb.RecordFailure()
	if cb.Allow() {
		t.Error("breaker should be open after 3 consecutive failures")
	}
	if cb.Stats().State != CircuitOpen {
		t.Errorf("state = %v, want open", cb.Stats().State)
	}
}

func TestCircuitBreakerSuccessResets(t *testing.T) {
	cb := NewCircuitBreakerWithConfig(3, time.Minute, 1)

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()

	if !cb.Allow() {
		t.Error("success should reset the consecutive failure count")
	}
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreakerWithConfig(1, 10*time.Millisecond, 1)

	cb.RecordFailure()
	if cb.Allow() {
		t.Fatal("breaker should be open")
	}

	time.Sleep(20 * time.Millisecond)

	if !cb.Allow() {
		t.Fatal("breaker should probe after the reset timeout")
	}
	cb.RecordSuccess()

	if cb.Stats().State != CircuitClosed {
		t.Errorf("state = %v, want closed after successful probe", cb.Stats().State)
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreakerWithConfig(1, 10*time.Millisecond, 1)

	cb.RecordFailure()
	time.Sleep(20 * time.Millisecond)

	if !cb.Allow() {
		t.Fatal("breaker should probe after the reset timeout")
	}
	cb.RecordFailure()

	if cb.Allow() {
		t.Error("failed probe should reopen the breaker immediately")
	}
}

func TestErrCircuitOpenMessage(t *testing.T) {
	err := &ErrCircuitOpen{
		State:    CircuitOpen,
		RetryAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Failures: 5,
	}
	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	for _, want := range []string{"open", "5", "2026"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
}

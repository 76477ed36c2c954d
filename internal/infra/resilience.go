// Package infra provides shared infrastructure for the Notion workspace MCP
// server: a TTL cache, in-flight request deduplication, and a circuit breaker
// guarding the Notion API.
package infra

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Deduplicator coalesces identical in-flight requests. When several tool
// invocations fetch the same object simultaneously, only one API call is
// made and all waiters share the result.
type Deduplicator struct {
	mu       sync.Mutex
	inflight map[string]*inflightCall
}

type inflightCall struct {
	done   chan struct{}
	result any
	err    error
}

// NewDeduplicator creates an empty Deduplicator.
func NewDeduplicator() *Deduplicator {
	return &Deduplicator{inflight: make(map[string]*inflightCall)}
}

// Do executes fn unless a call with the same key is already running, in
// which case it waits for that call's result. The bool reports whether the
// result was shared from another caller.
func (d *Deduplicator) Do(ctx context.Context, key string, fn func() (any, error)) (any, bool, error) {
	d.mu.Lock()
	if call, ok := d.inflight[key]; ok {
		d.mu.Unlock()
		select {
		case <-call.done:
			return call.result, true, call.err
		case <-ctx.Done():
			return nil, false, ctx.Err()
		}
	}

	call := &inflightCall{done: make(chan struct{})}
	d.inflight[key] = call
	d.mu.Unlock()

	call.result, call.err = fn()
	close(call.done)

	d.mu.Lock()
	delete(d.inflight, key)
	d.mu.Unlock()

	return call.result, false, call.err
}

// InFlight returns the number of requests currently being deduplicated.
func (d *Deduplicator) InFlight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inflight)
}

// CircuitState is the current state of a CircuitBreaker.
type CircuitState int

const (
	CircuitClosed   CircuitState = iota // normal operation
	CircuitOpen                         // failing fast
	CircuitHalfOpen                     // probing for recovery
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker fails fast when the Notion API is unresponsive. It opens
// after a run of consecutive failures and probes recovery after a timeout.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	resetTimeout     time.Duration
	halfOpenMax      int

	state            CircuitState
	consecutiveFails int
	lastFailure      time.Time
	halfOpenCount    int
}

// NewCircuitBreaker creates a breaker with default thresholds.
func NewCircuitBreaker() *CircuitBreaker {
	return NewCircuitBreakerWithConfig(5, 30*time.Second, 2)
}

// NewCircuitBreakerWithConfig creates a breaker with custom thresholds.
func NewCircuitBreakerWithConfig(failureThreshold int, resetTimeout time.Duration, halfOpenMax int) *CircuitBreaker {
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		halfOpenMax:      halfOpenMax,
		state:            CircuitClosed,
	}
}

// Allow reports whether a request may proceed.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitClosed:
		return true
	case CircuitOpen:
		if time.Since(cb.lastFailure) >= cb.resetTimeout {
			cb.state = CircuitHalfOpen
			cb.halfOpenCount = 1
			return true
		}
		return false
	case CircuitHalfOpen:
		if cb.halfOpenCount < cb.halfOpenMax {
			cb.halfOpenCount++
			return true
		}
		return false
	}
	return false
}

// RecordSuccess resets the failure count and closes the circuit.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.consecutiveFails = 0
	cb.state = CircuitClosed
	cb.halfOpenCount = 0
}

// RecordFailure counts a failure, opening the circuit at the threshold.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.consecutiveFails++
	cb.lastFailure = time.Now()
	if cb.state == CircuitHalfOpen || cb.consecutiveFails >= cb.failureThreshold {
		cb.state = CircuitOpen
	}
}

// CircuitBreakerStats is a snapshot of breaker state for diagnostics.
type CircuitBreakerStats struct {
	State            CircuitState
	ConsecutiveFails int
	LastFailure      time.Time
}

// Stats returns a snapshot of the breaker's state.
func (cb *CircuitBreaker) Stats() CircuitBreakerStats {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return CircuitBreakerStats{
		State:            cb.state,
		ConsecutiveFails: cb.consecutiveFails,
		LastFailure:      cb.lastFailure,
	}
}

// ErrCircuitOpen is returned when the circuit breaker rejects a request.
type ErrCircuitOpen struct {
	State    CircuitState
	RetryAt  time.Time
	Failures int
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker %s after %d consecutive failures, retry after %s",
		e.State, e.Failures, e.RetryAt.Format(time.RFC3339))
}

package base

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/olgasafonova/notion-workspace-mcp-server/internal/infra"
)

func newTestClient() *Client {
	return NewClient(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient()
	defer c.Close()

	if c.HTTPClient == nil {
		t.Error("HTTPClient not initialized")
	}
	if c.Cache == nil || c.Dedup == nil || c.Breaker == nil {
		t.Error("infra components not initialized")
	}
	if cap(c.Semaphore) != MaxConcurrentRequests {
		t.Errorf("semaphore cap = %d, want %d", cap(c.Semaphore), MaxConcurrentRequests)
	}
}

func TestDo_MarshalsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "test" {
			t.Errorf("body = %v", body)
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	c := newTestClient()
	defer c.Close()

	body, status, err := c.Do(context.Background(), Request{
		Method: http.MethodPost,
		URL:    server.URL,
		Body:   map[string]any{"name": "test"},
	})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if string(body) != `{"ok": true}` {
		t.Errorf("body = %s", body)
	}
}

func TestDo_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("X-Custom = %q", got)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient()
	defer c.Close()

	header := http.Header{}
	header.Set("X-Custom", "yes")
	_, _, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, Header: header})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient()
	defer c.Close()

	_, status, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, MaxRetry: 3})
	if err != nil {
		t.Fatalf("Do failed after retries: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestDo_ExhaustsRetryBudget(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("persistent failure"))
	}))
	defer server.Close()

	c := newTestClient()
	defer c.Close()

	_, _, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, MaxRetry: 2})
	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestDo_DoesNotRetry4xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"object": "error"}`))
	}))
	defer server.Close()

	c := newTestClient()
	defer c.Close()

	body, status, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, MaxRetry: 3})
	if err != nil {
		t.Fatalf("4xx should return to the caller, got error: %v", err)
	}
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if len(body) == 0 {
		t.Error("body should carry the error payload")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1 (4xx is not retried)", calls.Load())
	}
}

func TestDo_HonorsRetryAfter(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := newTestClient()
	defer c.Close()

	start := time.Now()
	_, status, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, MaxRetry: 3})
	if err != nil {
		t.Fatalf("Do failed: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d", status)
	}
	if elapsed := time.Since(start); elapsed < time.Second {
		t.Errorf("elapsed = %v, want at least the Retry-After second", elapsed)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestDo_PersistentRateLimitReportsError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newTestClient()
	defer c.Close()

	_, _, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: server.URL, MaxRetry: 2})
	if err == nil {
		t.Fatal("Expected error when every attempt is rate limited")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("err = %v, want a rate limit error", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestDo_CircuitOpenFailsFast(t *testing.T) {
	c := newTestClient()
	defer c.Close()

	for i := 0; i < 5; i++ {
		c.Breaker.RecordFailure()
	}

	_, _, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: "http://127.0.0.1:0"})
	var circuitErr *infra.ErrCircuitOpen
	if !errors.As(err, &circuitErr) {
		t.Fatalf("err = %v, want ErrCircuitOpen", err)
	}
	if circuitErr.Failures != 5 {
		t.Errorf("Failures = %d, want 5", circuitErr.Failures)
	}
}

func TestAcquireSlot_ContextCancel(t *testing.T) {
	c := newTestClient()
	defer c.Close()

	// Fill all slots.
	for i := 0; i < MaxConcurrentRequests; i++ {
		if err := c.AcquireSlot(context.Background()); err != nil {
			t.Fatalf("AcquireSlot %d failed: %v", i, err)
		}
	}

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := c.AcquireSlot(cancelCtx); err == nil {
		t.Error("Expected error when all slots are held and context is canceled")
	}

	c.ReleaseSlot()
	if err := c.AcquireSlot(context.Background()); err != nil {
		t.Errorf("AcquireSlot after release failed: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("abcdefghij", 4); got != "abcd..." {
		t.Errorf("truncate long = %q", got)
	}
}

// Package base provides the shared HTTP client infrastructure beneath the
// Notion API client: bounded concurrency, retries, Retry-After handling,
// and circuit breaking.
package base

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/olgasafonova/notion-workspace-mcp-server/internal/infra"
	"github.com/olgasafonova/notion-workspace-mcp-server/metrics"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// MaxConcurrentRequests limits parallel API calls
	MaxConcurrentRequests = 5

	// DefaultMaxRetry is the retry budget per request
	DefaultMaxRetry = 3
)

// Client provides common HTTP client infrastructure with caching, bounded
// concurrency, circuit breaking, and request deduplication.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Cache      *infra.Cache
	Dedup      *infra.Deduplicator
	Breaker    *infra.CircuitBreaker
	Semaphore  chan struct{}
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(client *Client) {
		client.HTTPClient = newHTTPClient(d)
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithCache sets a custom cache
func WithCache(c *infra.Cache) ClientOption {
	return func(client *Client) {
		client.Cache = c
	}
}

// NewClient creates a new base client with default settings
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		Cache:      infra.NewCache(infra.DefaultMaxCacheEntries),
		Dedup:      infra.NewDeduplicator(),
		Breaker:    infra.NewCircuitBreaker(),
		Semaphore:  make(chan struct{}, MaxConcurrentRequests),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close releases resources held by the client
func (c *Client) Close() {
	if c.Cache != nil {
		c.Cache.Close()
	}
}

// BreakerStats returns the current circuit breaker state
func (c *Client) BreakerStats() infra.CircuitBreakerStats {
	return c.Breaker.Stats()
}

// AcquireSlot blocks until a request slot is available or context is canceled
func (c *Client) AcquireSlot(ctx context.Context) error {
	select {
	case c.Semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for request slot: %w", ctx.Err())
	}
}

// ReleaseSlot releases a request slot
func (c *Client) ReleaseSlot() {
	<-c.Semaphore
}

// Request configures a single HTTP exchange. Body, when non-nil, is
// marshaled to JSON.
type Request struct {
	Method   string
	URL      string
	Body     any
	Header   http.Header
	MaxRetry int // defaults to DefaultMaxRetry
}

// Do performs an HTTP request with circuit breaking, bounded concurrency,
// and retries. Network errors and 5xx responses are retried; a 429 honors
// the Retry-After header. Returns the response body and status code; the
// caller handles response parsing and 4xx classification.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, int, error) {
	if !c.Breaker.Allow() {
		stats := c.Breaker.Stats()
		return nil, 0, &infra.ErrCircuitOpen{
			State:    stats.State,
			RetryAt:  stats.LastFailure.Add(30 * time.Second),
			Failures: stats.ConsecutiveFails,
		}
	}

	if err := c.AcquireSlot(ctx); err != nil {
		return nil, 0, err
	}
	defer c.ReleaseSlot()

	var payload []byte
	if r.Body != nil {
		var err error
		payload, err = json.Marshal(r.Body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	maxRetry := r.MaxRetry
	if maxRetry <= 0 {
		maxRetry = DefaultMaxRetry
	}

	var lastErr error
	for attempt := 0; attempt < maxRetry; attempt++ {
		if attempt > 0 {
			metrics.NotionAPIRetries.Inc()
			backoff := time.Duration(attempt*attempt) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, 0, fmt.Errorf("context canceled during backoff: %w", ctx.Err())
			}
		}

		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bodyReader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, vs := range r.Header {
			for _, v := range vs {
				req.Header.Set(k, v)
			}
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.Logger.Warn("API request failed, retrying",
				"attempt", attempt+1,
				"method", r.Method,
				"url", r.URL,
				"error", err)
			continue
		}

		body, err := readAndClose(resp)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rate limited (429)")
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, parseErr := strconv.Atoi(retryAfter); parseErr == nil {
					metrics.RateLimitWaits.Inc()
					select {
					case <-time.After(time.Duration(seconds) * time.Second):
					case <-ctx.Done():
						return nil, 0, ctx.Err()
					}
				}
			}
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(string(body), 200))
			continue
		}

		return body, resp.StatusCode, nil
	}

	c.Breaker.RecordFailure()
	return nil, 0, lastErr
}

// RecordSuccess records a successful exchange with the circuit breaker
func (c *Client) RecordSuccess() {
	c.Breaker.RecordSuccess()
}

// RecordFailure records a failed exchange with the circuit breaker
func (c *Client) RecordFailure() {
	c.Breaker.RecordFailure()
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with tuned transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

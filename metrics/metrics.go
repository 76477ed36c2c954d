// Package metrics provides Prometheus metrics for the Notion workspace MCP
// server. It tracks request counts, latencies, cache performance, and error
// rates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "notion_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// ErrorsTotal counts tool failures by error kind
	ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "errors_total",
		Help:      "Tool failures by tool and error kind",
	}, []string{"tool", "kind"})

	// CacheHits counts cache hits
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_hits_total",
		Help:      "Total cache hit count",
	})

	// CacheMisses counts cache misses
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_misses_total",
		Help:      "Total cache miss count",
	})

	// CacheSize tracks current cache entry count
	CacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "cache_entries",
		Help:      "Current number of cache entries",
	})

	// CacheEvictions counts cache evictions
	CacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "cache_evictions_total",
		Help:      "Total cache eviction count",
	})

	// NotionAPILatency measures Notion API call latency by endpoint
	NotionAPILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "notion_api_latency_seconds",
		Help:      "Notion API call latency by endpoint",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// NotionAPIRequestsTotal counts Notion API requests
	NotionAPIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "notion_api_requests_total",
		Help:      "Total Notion API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// NotionAPIErrors counts Notion API errors by error kind
	NotionAPIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "notion_api_errors_total",
		Help:      "Notion API errors by endpoint and error kind",
	}, []string{"endpoint", "kind"})

	// NotionAPIRetries counts API request retries
	NotionAPIRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "notion_api_retries_total",
		Help:      "Notion API retry count",
	})

	// RateLimitWaits counts requests that waited out a Retry-After window
	RateLimitWaits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rate_limit_waits_total",
		Help:      "Requests that waited for the API rate limiter",
	})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a Notion API call
func RecordAPICall(endpoint string, duration float64, success bool, errorKind string) {
	status := "success"
	if !success {
		status = "error"
	}
	NotionAPIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	NotionAPILatency.WithLabelValues(endpoint).Observe(duration)
	if errorKind != "" {
		NotionAPIErrors.WithLabelValues(endpoint, errorKind).Inc()
	}
}

// RecordCacheAccess records a cache hit or miss
func RecordCacheAccess(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// SetCacheSize updates the current cache size gauge
func SetCacheSize(size int64) {
	CacheSize.Set(float64(size))
}

package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// gatherFamily finds a metric family by name in the default registry.
func gatherFamily(t *testing.T, name string) *dto.MetricFamily {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestMetricsRegistered(t *testing.T) {
	// Touch one child of each vec so the family materializes.
	RequestsTotal.WithLabelValues("notion_search", "success").Add(0)
	RequestDuration.WithLabelValues("notion_search").Observe(0)
	ErrorsTotal.WithLabelValues("notion_search", "validation").Add(0)
	NotionAPIRetries.Add(0)

	for _, name := range []string{
		"notion_mcp_requests_total",
		"notion_mcp_request_duration_seconds",
		"notion_mcp_errors_total",
		"notion_mcp_notion_api_retries_total",
		"notion_mcp_cache_hits_total",
	} {
		if gatherFamily(t, name) == nil {
			t.Errorf("metric family %s not registered", name)
		}
	}
}

func TestMetricNamespace(t *testing.T) {
	mf := gatherFamily(t, Namespace+"_requests_total")
	if mf == nil {
		t.Skip("requests_total not yet materialized")
	}
	if !strings.HasPrefix(mf.GetName(), Namespace+"_") {
		t.Errorf("family %s lacks the %s namespace", mf.GetName(), Namespace)
	}
	if mf.GetType() != dto.MetricType_COUNTER {
		t.Errorf("requests_total type = %v, want counter", mf.GetType())
	}
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("notion_search", "success"))
	RecordRequest("notion_search", 0.05, true)
	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("notion_search", "success"))
	if after != before+1 {
		t.Errorf("success counter = %v, want %v", after, before+1)
	}

	before = testutil.ToFloat64(RequestsTotal.WithLabelValues("notion_search", "error"))
	RecordRequest("notion_search", 0.05, false)
	after = testutil.ToFloat64(RequestsTotal.WithLabelValues("notion_search", "error"))
	if after != before+1 {
		t.Errorf("error counter = %v, want %v", after, before+1)
	}
}

func TestRecordAPICall(t *testing.T) {
	before := testutil.ToFloat64(NotionAPIRequestsTotal.WithLabelValues("/pages", "success"))
	RecordAPICall("/pages", 0.1, true, "")
	after := testutil.ToFloat64(NotionAPIRequestsTotal.WithLabelValues("/pages", "success"))
	if after != before+1 {
		t.Errorf("api counter = %v, want %v", after, before+1)
	}

	errBefore := testutil.ToFloat64(NotionAPIErrors.WithLabelValues("/pages", "not_found"))
	RecordAPICall("/pages", 0.1, false, "not_found")
	errAfter := testutil.ToFloat64(NotionAPIErrors.WithLabelValues("/pages", "not_found"))
	if errAfter != errBefore+1 {
		t.Errorf("error kind counter = %v, want %v", errAfter, errBefore+1)
	}
}

func TestRecordCacheAccess(t *testing.T) {
	hitsBefore := testutil.ToFloat64(CacheHits)
	missesBefore := testutil.ToFloat64(CacheMisses)

	RecordCacheAccess(true)
	RecordCacheAccess(false)
	RecordCacheAccess(false)

	if got := testutil.ToFloat64(CacheHits); got != hitsBefore+1 {
		t.Errorf("hits = %v, want %v", got, hitsBefore+1)
	}
	if got := testutil.ToFloat64(CacheMisses); got != missesBefore+2 {
		t.Errorf("misses = %v, want %v", got, missesBefore+2)
	}
}

func TestSetCacheSize(t *testing.T) {
	SetCacheSize(42)
	if got := testutil.ToFloat64(CacheSize); got != 42 {
		t.Errorf("cache size gauge = %v, want 42", got)
	}
}

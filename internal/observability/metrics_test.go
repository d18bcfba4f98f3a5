package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordUpstreamCountsFailuresSeparately(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m.RecordUpstream("gazetteer", "autocomplete", nil)
	m.RecordUpstream("gazetteer", "autocomplete", errors.New("boom"))

	if got := testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("gazetteer", "autocomplete")); got != 2 {
		t.Fatalf("haulplan_upstream_requests_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.UpstreamFailures.WithLabelValues("gazetteer", "autocomplete")); got != 1 {
		t.Fatalf("haulplan_upstream_failures_total = %v, want 1", got)
	}
}

func TestRecordCacheSplitsHitsAndMisses(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m.RecordCache("haulplan_location_search", true)
	m.RecordCache("haulplan_location_search", true)
	m.RecordCache("haulplan_location_search", false)

	if got := testutil.ToFloat64(m.CacheHits.WithLabelValues("haulplan_location_search")); got != 2 {
		t.Fatalf("haulplan_cache_hits_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.CacheMisses.WithLabelValues("haulplan_location_search")); got != 1 {
		t.Fatalf("haulplan_cache_misses_total = %v, want 1", got)
	}
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	m.RecordUpstream("gazetteer", "autocomplete", errors.New("boom"))
	m.RecordCache("haulplan_location_search", true)
	if m.Handler() == nil {
		t.Fatal("nil metrics should still expose a scrape handler")
	}
}

func TestHandlerServesRegisteredCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.RecordUpstream("tripapi", "plan", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("scrape status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "haulplan_upstream_requests_total") {
		t.Fatal("scrape output missing haulplan_upstream_requests_total")
	}
}

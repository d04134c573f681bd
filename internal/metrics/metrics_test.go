package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tidx/ivtree/internal/metrics"
)

func TestRecordLoad(t *testing.T) {
	metrics.Reset()

	collector := metrics.NewCollector()
	collector.RecordLoad("chr1", 10, 2)
	collector.RecordLoad("chr1", 5, 0)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	metrics.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, `ivtree_intervals_loaded_total{outcome="accepted",shard="chr1"} 15`) {
		t.Errorf("expected accepted count of 15 for chr1, got body:\n%s", body)
	}
	if !strings.Contains(body, `ivtree_intervals_loaded_total{outcome="rejected",shard="chr1"} 2`) {
		t.Errorf("expected rejected count of 2 for chr1, got body:\n%s", body)
	}
}

func TestRecordShardTotals(t *testing.T) {
	metrics.Reset()

	collector := metrics.NewCollector()
	collector.RecordShardTotals(3, 120)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	metrics.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "ivtree_shards 3") {
		t.Errorf("expected ivtree_shards 3, got body:\n%s", body)
	}
	if !strings.Contains(body, "ivtree_intervals 120") {
		t.Errorf("expected ivtree_intervals 120, got body:\n%s", body)
	}
}

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/zhar97/solar-om-analytics/internal/cli/query"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewAPIClient(srv.URL)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestNormalizeServerURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"http://localhost:8080", "http://localhost:8080", false},
		{"http://localhost:8080/api/", "http://localhost:8080", false},
		{"https://solar.example.com", "https://solar.example.com", false},
		{"", "", true},
		{"://broken", "", true},
	}
	for _, tt := range tests {
		got, err := normalizeServerURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("normalizeServerURL(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeServerURL(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeServerURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListAnomaliesSuccess(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": [
				{"anomaly_id": "ANOM_001", "plant_id": "PLANT_001", "severity": "high", "z_score": 3.2},
				{"anomaly_id": "ANOM_002", "plant_id": "PLANT_001", "severity": "low", "iqr_bounds": {"lower": 1.0, "upper": 9.0}}
			]
		}`))
	})

	st := query.New(query.Anomalies()).SetFilter("severity", "high")
	items, total, err := c.ListAnomalies(context.Background(), query.Build(st))
	if err != nil {
		t.Fatalf("ListAnomalies failed: %v", err)
	}

	if gotPath != "/api/anomalies" {
		t.Errorf("path = %q, want /api/anomalies", gotPath)
	}
	if gotQuery.Get("severity") != "high" || gotQuery.Get("limit") != "10" {
		t.Errorf("unexpected query: %v", gotQuery)
	}
	if len(items) != 2 {
		t.Fatalf("got %d anomalies, want 2", len(items))
	}
	if items[0].AnomalyID != "ANOM_001" || items[0].ZScore == nil || *items[0].ZScore != 3.2 {
		t.Errorf("unexpected first anomaly: %+v", items[0])
	}
	if items[1].IQRBounds == nil || items[1].IQRBounds.Upper != 9.0 {
		t.Errorf("unexpected second anomaly: %+v", items[1])
	}
	// No total in the anomaly envelope, the page length stands in.
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
}

func TestListAnomaliesPlantInPath(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success": true, "data": []}`))
	})

	st := query.New(query.Anomalies()).SetFilter("plant_id", "PLANT_002")
	if _, _, err := c.ListAnomalies(context.Background(), query.Build(st)); err != nil {
		t.Fatalf("ListAnomalies failed: %v", err)
	}
	if gotPath != "/api/anomalies/PLANT_002" {
		t.Errorf("path = %q, want /api/anomalies/PLANT_002", gotPath)
	}
}

func TestListPatternsEchoesTotal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"patterns": [{"pattern_id": "PAT_001", "pattern_type": "seasonal", "confidence_pct": 91.5}],
			"total": 37,
			"skip": 0,
			"limit": 10
		}`))
	})

	items, total, err := c.ListPatterns(context.Background(), query.Build(query.New(query.Patterns())))
	if err != nil {
		t.Fatalf("ListPatterns failed: %v", err)
	}
	if len(items) != 1 || items[0].PatternID != "PAT_001" {
		t.Errorf("unexpected patterns: %+v", items)
	}
	if total != 37 {
		t.Errorf("total = %d, want 37", total)
	}
}

func TestListInsightsSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"insights": [{"insight_id": "INS_001", "insight_type": "maintenance_recommendation", "urgency": "critical"}],
			"total": 1
		}`))
	})

	items, total, err := c.ListInsights(context.Background(), query.Build(query.New(query.Insights())))
	if err != nil {
		t.Fatalf("ListInsights failed: %v", err)
	}
	if total != 1 || items[0].Urgency != "critical" {
		t.Errorf("unexpected insights: %+v total=%d", items, total)
	}
}

func TestEnvelopeFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": false,
			"error": "no analysis results available. Run analysis first.",
			"error_code": "NO_DATA"
		}`))
	})

	_, _, err := c.ListPatterns(context.Background(), query.Build(query.New(query.Patterns())))
	if err == nil {
		t.Fatal("expected error for success:false envelope")
	}
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if !strings.Contains(reqErr.Message, "no analysis results") {
		t.Errorf("error message %q should carry the envelope error", reqErr.Message)
	}
}

func TestNonOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "error": "plant not found: PLANT_099", "error_code": "NOT_FOUND"}`))
	})

	st := query.New(query.Anomalies()).SetFilter("plant_id", "PLANT_099")
	_, _, err := c.ListAnomalies(context.Background(), query.Build(st))
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", reqErr.StatusCode)
	}
	if !strings.Contains(reqErr.Message, "plant not found") {
		t.Errorf("message %q should carry the envelope error", reqErr.Message)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c, err := NewAPIClient(addr)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, _, err = c.ListAnomalies(context.Background(), query.Build(query.New(query.Anomalies())))
	reqErr, ok := err.(*RequestError)
	if !ok {
		t.Fatalf("error type = %T, want *RequestError", err)
	}
	if reqErr.StatusCode != 0 {
		t.Errorf("transport errors should carry no status, got %d", reqErr.StatusCode)
	}
}

func TestListPlants(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/plants" {
			t.Errorf("path = %q, want /api/plants", r.URL.Path)
		}
		w.Write([]byte(`{
			"success": true,
			"data": [{"plant_id": "PLANT_001", "plant_name": "Sonnenfeld Nord", "capacity_kw": 4200}]
		}`))
	})

	plants, err := c.ListPlants(context.Background())
	if err != nil {
		t.Fatalf("ListPlants failed: %v", err)
	}
	if len(plants) != 1 || plants[0].CapacityKW != 4200 {
		t.Errorf("unexpected plants: %+v", plants)
	}
}

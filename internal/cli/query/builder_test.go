package query

import (
	"testing"
)

func TestBuildDefaults(t *testing.T) {
	d := Build(New(Anomalies()))

	if d.Path != "/api/anomalies" {
		t.Errorf("path = %q, want /api/anomalies", d.Path)
	}
	if got := d.Values.Get("skip"); got != "0" {
		t.Errorf("skip = %q, want 0", got)
	}
	if got := d.Values.Get("limit"); got != "10" {
		t.Errorf("limit = %q, want 10", got)
	}
	if got := d.Values.Get("sort"); got != "date" {
		t.Errorf("sort = %q, want date", got)
	}
	if got := d.Values.Get("order"); got != "desc" {
		t.Errorf("order = %q, want desc", got)
	}
}

func TestBuildInsightDefaults(t *testing.T) {
	d := Build(New(Insights()))

	if d.Path != "/api/insights" {
		t.Errorf("path = %q, want /api/insights", d.Path)
	}
	for key, want := range map[string]string{
		"skip":       "0",
		"limit":      "10",
		"sort_by":    "confidence",
		"sort_order": "desc",
	} {
		if got := d.Values.Get(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	for _, key := range []string{"plant_id", "insight_type", "urgency", "min_confidence"} {
		if d.Values.Has(key) {
			t.Errorf("initial descriptor must not carry %s", key)
		}
	}
}

func TestBuildSkipFromPage(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		wantSkip string
	}{
		{1, 10, "0"},
		{2, 10, "10"},
		{4, 25, "75"},
		{3, 5, "10"},
	}
	for _, tt := range tests {
		st := New(Patterns()).SetPageSize(tt.pageSize).SetPage(tt.page)
		d := Build(st)
		if got := d.Values.Get("skip"); got != tt.wantSkip {
			t.Errorf("page %d size %d: skip = %q, want %q", tt.page, tt.pageSize, got, tt.wantSkip)
		}
	}
}

func TestBuildOmitsUnsetFilters(t *testing.T) {
	d := Build(New(Insights()))

	for _, key := range []string{"plant_id", "insight_type", "urgency", "min_confidence"} {
		if d.Values.Has(key) {
			t.Errorf("unset filter %q must not be serialized", key)
		}
	}
}

func TestBuildPlantInPath(t *testing.T) {
	st := New(Anomalies()).SetFilter("plant_id", "PLANT_001")
	d := Build(st)

	if d.Path != "/api/anomalies/PLANT_001" {
		t.Errorf("path = %q, want /api/anomalies/PLANT_001", d.Path)
	}
	if d.Values.Has("plant_id") {
		t.Error("plant_id must not appear in the query string for anomalies")
	}
}

func TestBuildPlantInQueryForPatterns(t *testing.T) {
	st := New(Patterns()).SetFilter("plant_id", "PLANT_002")
	d := Build(st)

	if d.Path != "/api/patterns" {
		t.Errorf("path = %q, want /api/patterns", d.Path)
	}
	if got := d.Values.Get("plant_id"); got != "PLANT_002" {
		t.Errorf("plant_id = %q, want PLANT_002", got)
	}
}

func TestBuildSortParamNames(t *testing.T) {
	// Anomalies spell sorting sort/order, patterns and insights
	// sort_by/sort_order.
	d := Build(New(Anomalies()))
	if !d.Values.Has("sort") || d.Values.Has("sort_by") {
		t.Error("anomalies must use sort/order parameter names")
	}

	d = Build(New(Patterns()))
	if !d.Values.Has("sort_by") || d.Values.Has("sort") {
		t.Error("patterns must use sort_by/sort_order parameter names")
	}
}

func TestBuildDeterministic(t *testing.T) {
	st := New(Insights()).
		SetFilter("urgency", "high").
		SetFilter("min_confidence", "75").
		SetSort("generation_date").
		SetPage(2)

	first := Build(st).Encode()
	for i := 0; i < 10; i++ {
		if got := Build(st).Encode(); got != first {
			t.Fatalf("descriptor not deterministic: %q != %q", got, first)
		}
	}
}

func TestBuildEqualStatesEqualDescriptors(t *testing.T) {
	a := New(Patterns()).SetFilter("pattern_type", "degradation").SetPage(3)
	b := New(Patterns()).SetPage(9).SetFilter("pattern_type", "degradation").SetPage(3)

	if Build(a).Encode() != Build(b).Encode() {
		t.Errorf("states reached by different paths should serialize identically:\n%s\n%s",
			Build(a).Encode(), Build(b).Encode())
	}
}

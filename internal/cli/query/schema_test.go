package query

import "testing"

func TestSchemaDefaults(t *testing.T) {
	tests := []struct {
		schema    Schema
		path      string
		sort      string
		sortParam string
	}{
		{Anomalies(), "/api/anomalies", "date", "sort"},
		{Patterns(), "/api/patterns", "confidence_pct", "sort_by"},
		{Insights(), "/api/insights", "confidence", "sort_by"},
	}
	for _, tt := range tests {
		if tt.schema.Path != tt.path {
			t.Errorf("path = %q, want %q", tt.schema.Path, tt.path)
		}
		if got := tt.schema.DefaultSort(); got != tt.sort {
			t.Errorf("%s: default sort = %q, want %q", tt.path, got, tt.sort)
		}
		if tt.schema.SortParam != tt.sortParam {
			t.Errorf("%s: sort param = %q, want %q", tt.path, tt.schema.SortParam, tt.sortParam)
		}
		if !tt.schema.AllowsPageSize(tt.schema.DefaultPageSize) {
			t.Errorf("%s: default page size %d not in allowed set", tt.path, tt.schema.DefaultPageSize)
		}
	}
}

func TestSchemaAllows(t *testing.T) {
	s := Insights()

	if !s.AllowsFilter("urgency") || s.AllowsFilter("severity") {
		t.Error("insight filter keys should include urgency but not severity")
	}
	if !s.AllowsSort("generation_date") || s.AllowsSort("date") {
		t.Error("insight sort columns should include generation_date but not date")
	}
	if s.AllowsPageSize(7) {
		t.Error("7 is not a selectable page size")
	}
}

func TestNextSortWraps(t *testing.T) {
	s := Patterns()

	if got := s.NextSort("confidence_pct"); got != "significance_score" {
		t.Errorf("next after confidence_pct = %q", got)
	}
	if got := s.NextSort("first_observed_date"); got != "confidence_pct" {
		t.Errorf("cycle should wrap to the first column, got %q", got)
	}
	if got := s.NextSort("bogus"); got != "confidence_pct" {
		t.Errorf("unknown column should fall back to the default, got %q", got)
	}
}

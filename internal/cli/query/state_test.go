package query

import (
	"testing"
)

func TestSetFilterResetsPage(t *testing.T) {
	st := New(Anomalies()).SetPage(3)
	if st.Page != 3 {
		t.Fatalf("expected page 3, got %d", st.Page)
	}

	st = st.SetFilter("severity", "critical")
	if st.Page != 1 {
		t.Errorf("filter change should reset to page 1, got %d", st.Page)
	}
	if v, ok := st.Filter("severity"); !ok || v != "critical" {
		t.Errorf("expected severity filter 'critical', got %q (ok=%v)", v, ok)
	}
}

func TestSetFilterEmptyRemovesKey(t *testing.T) {
	st := New(Anomalies()).SetFilter("metric", "power_output_kwh")
	if !st.HasFilters() {
		t.Fatal("expected filter to be present")
	}

	st = st.SetFilter("metric", "")
	if _, ok := st.Filter("metric"); ok {
		t.Error("empty value should remove the filter key")
	}
	if st.HasFilters() {
		t.Error("expected no remaining filters")
	}
}

func TestSetFilterZeroRemovesKey(t *testing.T) {
	// min_confidence of zero means unconstrained and must not linger
	// in the state.
	st := New(Patterns()).SetFilter("min_confidence", "70")
	st = st.SetFilter("min_confidence", "0")
	if _, ok := st.Filter("min_confidence"); ok {
		t.Error("zero min_confidence should remove the filter key")
	}
}

func TestClearFilters(t *testing.T) {
	st := New(Insights()).
		SetFilter("urgency", "high").
		SetFilter("insight_type", "performance_trend").
		SetPage(2)

	st = st.ClearFilters()
	if st.HasFilters() {
		t.Error("expected all filters removed")
	}
	if st.Page != 1 {
		t.Errorf("clearing filters should reset to page 1, got %d", st.Page)
	}
}

func TestSetSortToggleAndSwitch(t *testing.T) {
	st := New(Anomalies())
	if st.Sort.Column != "date" || st.Sort.Direction != Descending {
		t.Fatalf("expected default sort date desc, got %s %s", st.Sort.Column, st.Sort.Direction)
	}

	// Same column flips direction.
	st = st.SetSort("date")
	if st.Sort.Direction != Ascending {
		t.Errorf("re-sorting the active column should flip to asc, got %s", st.Sort.Direction)
	}
	st = st.SetSort("date")
	if st.Sort.Direction != Descending {
		t.Errorf("second toggle should flip back to desc, got %s", st.Sort.Direction)
	}

	// New column starts descending and resets the page.
	st = st.SetSort("date").SetPage(4).SetSort("severity")
	if st.Sort.Column != "severity" || st.Sort.Direction != Descending {
		t.Errorf("new sort column should start desc, got %s %s", st.Sort.Column, st.Sort.Direction)
	}
	if st.Page != 1 {
		t.Errorf("sort change should reset to page 1, got %d", st.Page)
	}
}

func TestSetSortPreservesFilters(t *testing.T) {
	st := New(Anomalies()).SetFilter("severity", "high").SetSort("severity")
	if v, ok := st.Filter("severity"); !ok || v != "high" {
		t.Errorf("sort change must not touch filters, got %q (ok=%v)", v, ok)
	}
}

func TestSetPageSize(t *testing.T) {
	st := New(Patterns()).SetPage(5)

	st = st.SetPageSize(25)
	if st.PageSize != 25 {
		t.Errorf("expected page size 25, got %d", st.PageSize)
	}
	if st.Page != 1 {
		t.Errorf("page size change should reset to page 1, got %d", st.Page)
	}

	// Sizes outside the allowed set are ignored.
	st = st.SetPageSize(17)
	if st.PageSize != 25 {
		t.Errorf("disallowed page size should be ignored, got %d", st.PageSize)
	}
}

func TestSetPageIgnoresBelowOne(t *testing.T) {
	st := New(Insights()).SetPage(2)
	if got := st.SetPage(0).Page; got != 2 {
		t.Errorf("page 0 should be ignored, got %d", got)
	}
	if got := st.SetPage(-3).Page; got != 2 {
		t.Errorf("negative page should be ignored, got %d", got)
	}
}

func TestSkip(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		want     int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
		{7, 5, 30},
	}
	for _, tt := range tests {
		st := New(Anomalies()).SetPageSize(tt.pageSize).SetPage(tt.page)
		if got := st.Skip(); got != tt.want {
			t.Errorf("page %d size %d: skip = %d, want %d", tt.page, tt.pageSize, got, tt.want)
		}
	}
}

func TestStateImmutability(t *testing.T) {
	base := New(Anomalies())
	modified := base.SetFilter("severity", "low").SetPage(2)

	if base.HasFilters() {
		t.Error("mutation leaked into the original state")
	}
	if base.Page != 1 {
		t.Errorf("original state page changed to %d", base.Page)
	}
	if !modified.HasFilters() {
		t.Error("derived state lost its filter")
	}
}

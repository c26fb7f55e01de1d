package commands

import (
	"testing"

	"github.com/zhar97/solar-om-analytics/internal/cli/query"
)

func TestBuildStateDefaults(t *testing.T) {
	st, err := buildState(query.Anomalies(), &listFlags{page: 1}, nil, 0)
	if err != nil {
		t.Fatalf("buildState failed: %v", err)
	}
	if st.Sort.Column != "date" || st.Sort.Direction != query.Descending {
		t.Errorf("default sort = %s %s, want date desc", st.Sort.Column, st.Sort.Direction)
	}
	if st.Page != 1 || st.PageSize != 10 {
		t.Errorf("page/size = %d/%d, want 1/10", st.Page, st.PageSize)
	}
}

func TestBuildStateSortFlagKeepsDescending(t *testing.T) {
	// Naming the schema's default column must not flip the direction.
	st, err := buildState(query.Anomalies(), &listFlags{page: 1, sort: "date"}, nil, 0)
	if err != nil {
		t.Fatalf("buildState failed: %v", err)
	}
	if st.Sort.Direction != query.Descending {
		t.Errorf("direction = %s, want desc", st.Sort.Direction)
	}

	st, err = buildState(query.Anomalies(), &listFlags{page: 1, sort: "severity", order: "asc"}, nil, 0)
	if err != nil {
		t.Fatalf("buildState failed: %v", err)
	}
	if st.Sort.Column != "severity" || st.Sort.Direction != query.Ascending {
		t.Errorf("sort = %s %s, want severity asc", st.Sort.Column, st.Sort.Direction)
	}
}

func TestBuildStatePageAppliedLast(t *testing.T) {
	// Filters and sort each reset the page; the page flag must win.
	st, err := buildState(query.Patterns(), &listFlags{page: 3, sort: "significance_score"},
		map[string]string{"plant_id": "PLANT_001"}, 0)
	if err != nil {
		t.Fatalf("buildState failed: %v", err)
	}
	if st.Page != 3 {
		t.Errorf("page = %d, want 3", st.Page)
	}
}

func TestBuildStateRejections(t *testing.T) {
	tests := []struct {
		name    string
		flags   listFlags
		filters map[string]string
	}{
		{"unknown filter", listFlags{page: 1}, map[string]string{"color": "red"}},
		{"unknown sort", listFlags{page: 1, sort: "name"}, nil},
		{"bad order", listFlags{page: 1, order: "sideways"}, nil},
		{"bad page size", listFlags{page: 1, pageSize: 7}, nil},
		{"bad page", listFlags{page: 0}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildState(query.Anomalies(), &tt.flags, tt.filters, 0); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBuildStateConfigPageSize(t *testing.T) {
	st, err := buildState(query.Insights(), &listFlags{page: 1}, nil, 25)
	if err != nil {
		t.Fatalf("buildState failed: %v", err)
	}
	if st.PageSize != 25 {
		t.Errorf("page size = %d, want config default 25", st.PageSize)
	}

	// An explicit flag overrides the config default.
	st, err = buildState(query.Insights(), &listFlags{page: 1, pageSize: 50}, nil, 25)
	if err != nil {
		t.Fatalf("buildState failed: %v", err)
	}
	if st.PageSize != 50 {
		t.Errorf("page size = %d, want 50", st.PageSize)
	}
}

func TestMinConfidenceValue(t *testing.T) {
	tests := []struct {
		in      int
		want    string
		wantErr bool
	}{
		{0, "", false}, // zero means unset, never a >= 0 constraint
		{1, "1", false},
		{85, "85", false},
		{100, "100", false},
		{-1, "", true},
		{101, "", true},
	}
	for _, tt := range tests {
		got, err := minConfidenceValue(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("minConfidenceValue(%d) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("minConfidenceValue(%d) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

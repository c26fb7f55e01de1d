package query

// Schema describes how one entity's list endpoint is queried: which
// path it lives at, how sort parameters are spelled, which filter keys
// and sort columns it accepts, and its pagination defaults. The three
// list views share one store and builder implementation parameterized
// by Schema instead of duplicating the logic per entity.
type Schema struct {
	// Path is the list endpoint, e.g. "/api/patterns".
	Path string

	// PlantInPath routes the plant_id filter into the path
	// ("/api/anomalies/PLANT_001") instead of the query string.
	PlantInPath bool

	// SortParam and OrderParam are the query parameter names for the
	// sort column and direction ("sort"/"order" for anomalies,
	// "sort_by"/"sort_order" for patterns and insights).
	SortParam  string
	OrderParam string

	// SortColumns are the accepted sort columns; the first is the
	// default on initial load.
	SortColumns []string

	// FilterKeys are the accepted filter parameter names.
	FilterKeys []string

	// PageSizes are the selectable page sizes; DefaultPageSize must be
	// one of them.
	PageSizes       []int
	DefaultPageSize int
}

// DefaultSort returns the schema's default sort column.
func (s Schema) DefaultSort() string {
	if len(s.SortColumns) == 0 {
		return ""
	}
	return s.SortColumns[0]
}

// AllowsFilter reports whether key is a known filter for this entity.
func (s Schema) AllowsFilter(key string) bool {
	for _, k := range s.FilterKeys {
		if k == key {
			return true
		}
	}
	return false
}

// AllowsSort reports whether column is a known sort column.
func (s Schema) AllowsSort(column string) bool {
	for _, c := range s.SortColumns {
		if c == column {
			return true
		}
	}
	return false
}

// AllowsPageSize reports whether size is a selectable page size.
func (s Schema) AllowsPageSize(size int) bool {
	for _, n := range s.PageSizes {
		if n == size {
			return true
		}
	}
	return false
}

// NextSort returns the sort column following current, wrapping around.
// Used by the dashboard to cycle through sort columns with one key.
func (s Schema) NextSort(current string) string {
	for i, c := range s.SortColumns {
		if c == current {
			return s.SortColumns[(i+1)%len(s.SortColumns)]
		}
	}
	return s.DefaultSort()
}

// Anomalies returns the query schema for the anomaly list view.
// Default sort is date descending; the plant filter is a path segment.
func Anomalies() Schema {
	return Schema{
		Path:            "/api/anomalies",
		PlantInPath:     true,
		SortParam:       "sort",
		OrderParam:      "order",
		SortColumns:     []string{"date", "severity"},
		FilterKeys:      []string{"plant_id", "metric", "severity"},
		PageSizes:       []int{5, 10, 25, 50},
		DefaultPageSize: 10,
	}
}

// Patterns returns the query schema for the pattern list view.
// Default sort is confidence_pct descending.
func Patterns() Schema {
	return Schema{
		Path:            "/api/patterns",
		SortParam:       "sort_by",
		OrderParam:      "sort_order",
		SortColumns:     []string{"confidence_pct", "significance_score", "first_observed_date"},
		FilterKeys:      []string{"plant_id", "pattern_type", "min_confidence"},
		PageSizes:       []int{5, 10, 25, 50},
		DefaultPageSize: 10,
	}
}

// Insights returns the query schema for the insight list view.
// Default sort is confidence descending.
func Insights() Schema {
	return Schema{
		Path:            "/api/insights",
		SortParam:       "sort_by",
		OrderParam:      "sort_order",
		SortColumns:     []string{"confidence", "urgency", "generation_date"},
		FilterKeys:      []string{"plant_id", "insight_type", "urgency", "min_confidence"},
		PageSizes:       []int{5, 10, 25, 50},
		DefaultPageSize: 10,
	}
}

package query

// Direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Sort is the single active (column, direction) pair.
type Sort struct {
	Column    string
	Direction Direction
}

// State is one list view's query state: filters, sort and pagination.
// States are immutable values; every mutator returns a new snapshot
// and leaves the receiver untouched, so a snapshot handed to the
// request builder can never change under it.
//
// Reconciliation rules applied by the mutators:
//   - any filter or sort mutation resets the page to 1
//   - a pagination mutation never touches filters or sort
//   - exactly one sort column is active at a time
type State struct {
	Schema   Schema
	Filters  map[string]string
	Sort     Sort
	Page     int // 1-based
	PageSize int
}

// New returns the initial state for a schema: no filters, the schema's
// default sort descending, page 1 at the default page size.
func New(schema Schema) State {
	return State{
		Schema:   schema,
		Sort:     Sort{Column: schema.DefaultSort(), Direction: Descending},
		Page:     1,
		PageSize: schema.DefaultPageSize,
	}
}

// SetFilter merges a filter value into the state and resets the page
// to 1. An empty value removes the key entirely: "no constraint" and
// "empty value" are the same thing, and the builder never serializes
// absent keys. Numeric zero follows the same rule, so min_confidence=0
// means unset rather than "require >= 0" (the backend only applies the
// filter when the value is positive).
func (s State) SetFilter(key, value string) State {
	next := s.cloneFilters()
	if value == "" || value == "0" {
		delete(next.Filters, key)
	} else {
		next.Filters[key] = value
	}
	next.Page = 1
	return next
}

// ClearFilters removes every filter and resets the page to 1.
func (s State) ClearFilters() State {
	next := s
	next.Filters = nil
	next.Page = 1
	return next
}

// SetSort activates a sort column and resets the page to 1. Re-sorting
// by the already-active column flips the direction; a new column always
// starts descending.
func (s State) SetSort(column string) State {
	next := s
	if column == s.Sort.Column {
		next.Sort.Direction = s.Sort.Direction.Flip()
	} else {
		next.Sort = Sort{Column: column, Direction: Descending}
	}
	next.Page = 1
	return next
}

// SetPage moves to a 1-based page. Pages below 1 are ignored; the
// upper bound is enforced by the caller, which knows the server-side
// total (see controller.SetPage).
func (s State) SetPage(page int) State {
	if page < 1 {
		return s
	}
	next := s
	next.Page = page
	return next
}

// SetPageSize switches the page size and resets the page to 1. Sizes
// outside the schema's allowed set are ignored.
func (s State) SetPageSize(size int) State {
	if !s.Schema.AllowsPageSize(size) {
		return s
	}
	next := s
	next.PageSize = size
	next.Page = 1
	return next
}

// Filter returns the current value for a filter key and whether it is
// set.
func (s State) Filter(key string) (string, bool) {
	v, ok := s.Filters[key]
	return v, ok
}

// HasFilters reports whether any filter is set.
func (s State) HasFilters() bool {
	return len(s.Filters) > 0
}

// Skip returns the number of records preceding the current page.
func (s State) Skip() int {
	return (s.Page - 1) * s.PageSize
}

func (s State) cloneFilters() State {
	next := s
	next.Filters = make(map[string]string, len(s.Filters)+1)
	for k, v := range s.Filters {
		next.Filters[k] = v
	}
	return next
}

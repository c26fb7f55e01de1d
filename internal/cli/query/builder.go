package query

import (
	"net/url"
	"strconv"
)

// Descriptor is the serialized form of a query state: the request path
// and its query parameters. Descriptors derived from equal states are
// equal, and Encode produces a stable key ordering (url.Values sorts
// keys), so descriptors can be compared as strings.
type Descriptor struct {
	Path   string
	Values url.Values
}

// Encode returns the canonical "path?query" form of the descriptor.
func (d Descriptor) Encode() string {
	q := d.Values.Encode()
	if q == "" {
		return d.Path
	}
	return d.Path + "?" + q
}

// Build derives the request descriptor for a state snapshot. It is a
// pure function: no I/O, no clock, same state in, same descriptor out.
//
// Pagination is serialized as skip/limit with skip = (page-1)*pageSize
// and limit = pageSize. Filters with no value are omitted entirely.
func Build(s State) Descriptor {
	path := s.Schema.Path
	v := url.Values{}

	for key, val := range s.Filters {
		if val == "" {
			continue
		}
		if s.Schema.PlantInPath && key == "plant_id" {
			path += "/" + url.PathEscape(val)
			continue
		}
		v.Set(key, val)
	}

	v.Set("skip", strconv.Itoa(s.Skip()))
	v.Set("limit", strconv.Itoa(s.PageSize))
	v.Set(s.Schema.SortParam, s.Sort.Column)
	v.Set(s.Schema.OrderParam, string(s.Sort.Direction))

	return Descriptor{Path: path, Values: v}
}

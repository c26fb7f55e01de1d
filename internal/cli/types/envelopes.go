package types

// Response envelopes for the analytics API list endpoints. The three
// entities use slightly different envelope shapes; they are kept
// separate rather than unified behind a generic wrapper so the wire
// format stays exact.

// AnomalyListEnvelope wraps GET /api/anomalies responses. The anomaly
// endpoint reports no total, so Total carries the page length when the
// server omits it.
type AnomalyListEnvelope struct {
	Success   bool      `json:"success"`
	Data      []Anomaly `json:"data"`
	Total     int       `json:"total,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorCode string    `json:"error_code,omitempty"`
}

// PatternListEnvelope wraps GET /api/patterns responses.
type PatternListEnvelope struct {
	Success   bool      `json:"success"`
	Patterns  []Pattern `json:"patterns"`
	Total     int       `json:"total"`
	Skip      int       `json:"skip,omitempty"`
	Limit     int       `json:"limit,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorCode string    `json:"error_code,omitempty"`
}

// InsightListEnvelope wraps GET /api/insights responses.
type InsightListEnvelope struct {
	Success   bool      `json:"success"`
	Insights  []Insight `json:"insights"`
	Total     int       `json:"total"`
	Skip      int       `json:"skip,omitempty"`
	Limit     int       `json:"limit,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorCode string    `json:"error_code,omitempty"`
}

// PlantListEnvelope wraps GET /api/plants responses.
type PlantListEnvelope struct {
	Success   bool    `json:"success"`
	Data      []Plant `json:"data"`
	Error     string  `json:"error,omitempty"`
	ErrorCode string  `json:"error_code,omitempty"`
}

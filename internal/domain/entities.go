// Package domain holds the analytics entities served by the API and
// the domain error taxonomy shared by the usecase and handler layers.
package domain

// Severity levels, ordered low < medium < high < critical.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// SeverityRank maps a severity (or urgency) label to its ordinal for
// sorting. Unknown labels rank below low.
func SeverityRank(s string) int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	}
	return -1
}

// IQRBounds are the interquartile-range bounds attached to
// IQR-detected anomalies.
type IQRBounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Anomaly is one detected deviation from a plant's baseline. ZScore is
// set for z-score detections and IQRBounds for IQR detections; the two
// never appear together.
type Anomaly struct {
	AnomalyID          string     `json:"anomaly_id"`
	PlantID            string     `json:"plant_id"`
	Date               string     `json:"date"`
	MetricName         string     `json:"metric_name"`
	ActualValue        float64    `json:"actual_value"`
	ExpectedValue      float64    `json:"expected_value"`
	DeviationPct       float64    `json:"deviation_pct"`
	Severity           string     `json:"severity"`
	DetectedBy         string     `json:"detected_by"`
	Status             string     `json:"status"`
	ZScore             *float64   `json:"z_score,omitempty"`
	IQRBounds          *IQRBounds `json:"iqr_bounds,omitempty"`
	DetectionTimestamp string     `json:"detection_timestamp,omitempty"`
}

// Pattern is a recurring behaviour mined from plant telemetry.
type Pattern struct {
	PatternID         string   `json:"pattern_id"`
	PlantID           string   `json:"plant_id"`
	PatternType       string   `json:"pattern_type"`
	MetricName        string   `json:"metric_name"`
	Description       string   `json:"description"`
	Frequency         string   `json:"frequency"`
	Amplitude         float64  `json:"amplitude"`
	SignificanceScore float64  `json:"significance_score"`
	ConfidencePct     float64  `json:"confidence_pct"`
	FirstObservedDate string   `json:"first_observed_date"`
	LastObservedDate  string   `json:"last_observed_date"`
	OccurrenceCount   int      `json:"occurrence_count"`
	AffectedPlants    []string `json:"affected_plants"`
	IsFleetWide       bool     `json:"is_fleet_wide"`
}

// Insight is a generated finding or recommendation.
type Insight struct {
	InsightID         string   `json:"insight_id"`
	PlantID           string   `json:"plant_id"`
	InsightType       string   `json:"insight_type"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Reasoning         string   `json:"reasoning"`
	BusinessImpact    string   `json:"business_impact"`
	Confidence        float64  `json:"confidence"`
	RecommendedAction string   `json:"recommended_action,omitempty"`
	Urgency           string   `json:"urgency"`
	LinkedPatterns    []string `json:"linked_patterns"`
	LinkedAnomalies   []string `json:"linked_anomalies"`
	GenerationDate    string   `json:"generation_date"`
}

// Plant is a monitored solar power plant.
type Plant struct {
	PlantID            string  `json:"plant_id"`
	PlantName          string  `json:"plant_name"`
	CapacityKW         float64 `json:"capacity_kw"`
	Location           string  `json:"location"`
	InstallationDate   string  `json:"installation_date"`
	EquipmentType      string  `json:"equipment_type"`
	CurrentHealthScore float64 `json:"current_health_score"`
	LastAnalysisDate   string  `json:"last_analysis_date,omitempty"`
	AnomalyCount7D     int     `json:"anomaly_count_7d"`
	AnomalyCount30D    int     `json:"anomaly_count_30d"`
}

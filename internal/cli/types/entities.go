package types

// Severity is the ordered anomaly severity scale.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns the ordinal position of the severity (low=0 .. critical=3).
// Unknown values rank below low so malformed records sort last.
func (s Severity) Rank() int {
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

// Valid reports whether the severity is one of the allowed values.
func (s Severity) Valid() bool {
	return s.Rank() >= 0
}

// Urgency is the ordered insight urgency scale. It shares the severity
// ordering (low < medium < high < critical).
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Rank returns the ordinal position of the urgency (low=0 .. critical=3).
func (u Urgency) Rank() int {
	return Severity(u).Rank()
}

// Valid reports whether the urgency is one of the allowed values.
func (u Urgency) Valid() bool {
	return u.Rank() >= 0
}

// Detection methods used by the analytics backend.
const (
	MethodZScore = "zscore"
	MethodIQR    = "iqr"
	MethodManual = "manual"
)

// Pattern types produced by the pattern detector.
const (
	PatternSeasonal    = "seasonal"
	PatternWeeklyCycle = "weekly_cycle"
	PatternDegradation = "degradation"
)

// Insight types produced by the insights engine.
const (
	InsightAnomalyCause       = "anomaly_cause_hypothesis"
	InsightPatternExplanation = "pattern_explanation"
	InsightPerformanceTrend   = "performance_trend"
	InsightMaintenance        = "maintenance_recommendation"
	InsightOperational        = "operational_insight"
)

// IQRBounds holds the interquartile-range bounds reported for
// IQR-detected anomalies.
type IQRBounds struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Anomaly is a detected deviation from a plant's baseline.
//
// z_score and iqr_bounds are mutually exclusive on the wire; use
// Detection to get the structured view.
type Anomaly struct {
	AnomalyID          string     `json:"anomaly_id"`
	PlantID            string     `json:"plant_id"`
	Date               string     `json:"date"`
	MetricName         string     `json:"metric_name"`
	ActualValue        float64    `json:"actual_value"`
	ExpectedValue      float64    `json:"expected_value"`
	DeviationPct       float64    `json:"deviation_pct"`
	Severity           Severity   `json:"severity"`
	DetectedBy         string     `json:"detected_by"`
	Status             string     `json:"status"`
	ZScore             *float64   `json:"z_score,omitempty"`
	IQRBounds          *IQRBounds `json:"iqr_bounds,omitempty"`
	DetectionTimestamp string     `json:"detection_timestamp,omitempty"`
}

// DetectionStats is the tagged view of the method-specific anomaly
// statistics. Exactly one of ZScore or Bounds is meaningful, selected
// by Method.
type DetectionStats struct {
	Method string
	ZScore float64
	Bounds IQRBounds
}

// Detection returns the method-specific statistics for the anomaly.
// ok is false when neither field is present (e.g. manual detections),
// in which case callers simply omit the statistics segment.
func (a *Anomaly) Detection() (stats DetectionStats, ok bool) {
	switch {
	case a.ZScore != nil:
		return DetectionStats{Method: MethodZScore, ZScore: *a.ZScore}, true
	case a.IQRBounds != nil:
		return DetectionStats{Method: MethodIQR, Bounds: *a.IQRBounds}, true
	}
	return DetectionStats{}, false
}

// Pattern is a recurring behaviour detected across one or more plants.
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

// Insight is a generated finding or recommendation for plant operators.
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
	Urgency           Urgency  `json:"urgency"`
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

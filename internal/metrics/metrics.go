// Package metrics defines the Prometheus instrumentation for the
// analytics API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts served requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// DatasetRecords exposes the loaded dataset sizes by entity.
	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "analytics_dataset_records",
			Help: "Number of records in the loaded analytics dataset",
		},
		[]string{"entity"},
	)

	// AppStartTime records when the server started.
	AppStartTime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analytics_app_start_time_seconds",
			Help: "Unix timestamp of when the server started",
		},
	)
)

func init() {
	AppStartTime.SetToCurrentTime()
}

// RecordRequest records one served HTTP request. Statuses are bucketed
// by class to keep the label cardinality bounded.
func RecordRequest(method, path string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, statusLabel(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// SetDatasetSizes publishes the dataset record counts.
func SetDatasetSizes(plants, anomalies, patterns, insights int) {
	DatasetRecords.WithLabelValues("plants").Set(float64(plants))
	DatasetRecords.WithLabelValues("anomalies").Set(float64(anomalies))
	DatasetRecords.WithLabelValues("patterns").Set(float64(patterns))
	DatasetRecords.WithLabelValues("insights").Set(float64(insights))
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

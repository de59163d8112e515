package prometheus

import (
	"time"

	"inventory-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Database operation metrics
	DbOperationDuration prometheus.HistogramVec

	// Product metrics
	ProductOperationsCounter prometheus.CounterVec

	// History append metrics; the "dropped" outcome makes swallowed audit
	// failures observable
	HistoryAppendsCounter prometheus.CounterVec

	initialized bool
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(appConfig *config.Config) {
	prefix := appConfig.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Database operation metrics
	DbOperationDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	// Product metrics
	ProductOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_operations_total",
			Help: "Total number of product operations",
		},
		[]string{"operation"},
	)

	// History append metrics
	HistoryAppendsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_history_appends_total",
			Help: "Total number of product history appends by outcome",
		},
		[]string{"outcome"},
	)

	initialized = true
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if !initialized {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordProductOperation increments the counter for product operations
func RecordProductOperation(operation string) {
	if !initialized {
		return
	}
	ProductOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordHistoryAppend increments the history append counter for an outcome
func RecordHistoryAppend(outcome string) {
	if !initialized {
		return
	}
	HistoryAppendsCounter.WithLabelValues(outcome).Inc()
}

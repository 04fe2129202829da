package prometheus

import (
	"sync"
	"time"

	"vendor-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Authentication metrics
	LoginCounter        prometheus.Counter
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Store operation metrics
	StoreOperationDuration *prometheus.HistogramVec

	// Resource operation metrics
	VendorOperationsCounter  *prometheus.CounterVec
	ContactOperationsCounter *prometheus.CounterVec

	// Total vendor records known to the backend
	VendorsGauge prometheus.Gauge

	initOnce sync.Once
)

// InitMetrics initializes Prometheus metrics with configuration. Safe
// to call more than once; only the first call registers.
func InitMetrics(config *config.Config) {
	initOnce.Do(func() {
		prefix := config.Metrics.Prefix

		// HTTP request metrics
		HttpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		)

		HttpRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		)

		// Authentication metrics
		LoginCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_login_attempts_total",
				Help: "Total number of login attempts",
			},
		)

		AuthAttemptsCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_auth_attempts_total",
				Help: "Total number of authentication attempts",
			},
		)

		AuthSuccessCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_auth_success_total",
				Help: "Total number of successful authentications",
			},
		)

		AuthErrorsCounter = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_auth_errors_total",
				Help: "Total number of authentication errors",
			},
		)

		// Store operation metrics
		StoreOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_store_operation_duration_seconds",
				Help:    "Duration of backend store operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation_type"},
		)

		// Resource operation metrics
		VendorOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_vendor_operations_total",
				Help: "Total number of vendor operations",
			},
			[]string{"operation"},
		)

		ContactOperationsCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_contact_operations_total",
				Help: "Total number of contact person operations",
			},
			[]string{"operation"},
		)

		VendorsGauge = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: prefix + "_vendors_total",
				Help: "Number of vendor records in the backend",
			},
		)
	})
}

// TrackStoreOperation returns a function that records the duration of a
// backend store operation
func TrackStoreOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if StoreOperationDuration == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		StoreOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordVendorOperation increments the counter for vendor operations
func RecordVendorOperation(operation string) {
	if VendorOperationsCounter == nil {
		return
	}
	VendorOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordContactOperation increments the counter for contact operations
func RecordContactOperation(operation string) {
	if ContactOperationsCounter == nil {
		return
	}
	ContactOperationsCounter.WithLabelValues(operation).Inc()
}

// UpdateVendorCount updates the vendor records gauge
func UpdateVendorCount(count int) {
	if VendorsGauge == nil {
		return
	}
	VendorsGauge.Set(float64(count))
}

// RecordAuthAttempt increments the authentication attempts counter
func RecordAuthAttempt() {
	if AuthAttemptsCounter == nil {
		return
	}
	AuthAttemptsCounter.Inc()
}

// RecordAuthSuccess increments the successful authentications counter
func RecordAuthSuccess() {
	if AuthSuccessCounter == nil {
		return
	}
	AuthSuccessCounter.Inc()
}

// RecordAuthError increments the authentication errors counter
func RecordAuthError() {
	if AuthErrorsCounter == nil {
		return
	}
	AuthErrorsCounter.Inc()
}

// RecordLogin increments the login attempts counter
func RecordLogin() {
	if LoginCounter == nil {
		return
	}
	LoginCounter.Inc()
}

package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// EquipmentMutationsTotal counts equipment write operations by action
	// (create, update, archive, unarchive, maintenance).
	EquipmentMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "equipment_mutations_total",
			Help: "Total number of equipment mutations by action",
		},
		[]string{"action"},
	)

	// SerialConflictsTotal counts creates rejected with SERIAL_ALREADY_EXISTS.
	SerialConflictsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "equipment_serial_conflicts_total",
			Help: "Total number of creates rejected for a duplicate serial",
		},
	)
)

var (
	uuidPathSegment = regexp.MustCompile(`/[0-9a-fA-F-]{16,}(/|$)`)
	initOnce        sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, EquipmentMutationsTotal, SerialConflictsTotal)
	})
}

// NormalizePath reduces cardinality by replacing document-id path segments
// with {id}. E.g. /v1/equipments/9f8f.../events -> /v1/equipments/{id}/events.
func NormalizePath(path string) string {
	return uuidPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// RecordMutation counts a completed equipment mutation.
func RecordMutation(action string) {
	EquipmentMutationsTotal.WithLabelValues(action).Inc()
}

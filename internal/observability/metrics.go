package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	framesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appconsole",
			Subsystem: "wire",
			Name:      "frames_total",
			Help:      "Total L1 frames sent or received.",
		},
		[]string{"instance", "role", "direction"},
	)
	connectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appconsole",
			Subsystem: "wire",
			Name:      "connections_total",
			Help:      "Total connections reaching each terminal state.",
		},
		[]string{"instance", "role", "outcome"},
	)
	parseTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appconsole",
			Subsystem: "parser",
			Name:      "invocations_total",
			Help:      "Total command-line parses by outcome.",
		},
		[]string{"instance", "outcome"},
	)
	sessionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "appconsole",
			Subsystem: "session",
			Name:      "duration_seconds",
			Help:      "Duration of one executeCommand round trip.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"instance"},
	)
	adminRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appconsole",
			Subsystem: "admin",
			Name:      "requests_total",
			Help:      "Total requests served by the admin HTTP side channel.",
		},
		[]string{"instance", "method", "path", "status"},
	)
)

// RegisterMetrics registers the console's prometheus collectors exactly
// once, regardless of how many times it is called.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(framesTotal, connectionsTotal, parseTotal, sessionDuration, adminRequestsTotal)
	})
}

// RecordFrame counts one L1 frame transacted in the given direction
// ("send" or "recv").
func RecordFrame(instance, role, direction string) {
	RegisterMetrics()
	framesTotal.WithLabelValues(instance, role, direction).Inc()
}

// RecordConnectionOutcome counts a connection reaching a terminal state
// ("established", "failed", "cancelled").
func RecordConnectionOutcome(instance, role, outcome string) {
	RegisterMetrics()
	connectionsTotal.WithLabelValues(instance, role, outcome).Inc()
}

// RecordParse counts a command-line parse by its outcome ("success",
// "usageRequested", or an error kind name).
func RecordParse(instance, outcome string) {
	RegisterMetrics()
	parseTotal.WithLabelValues(instance, outcome).Inc()
}

// RecordSessionDuration observes how long one executeCommand round trip
// took, from send to the closing readyForCommand.
func RecordSessionDuration(instance string, duration time.Duration) {
	RegisterMetrics()
	sessionDuration.WithLabelValues(instance).Observe(duration.Seconds())
}

// RecordAdminRequest counts one request served by the admin HTTP side
// channel.
func RecordAdminRequest(instance, method, path string, status int) {
	RegisterMetrics()
	adminRequestsTotal.WithLabelValues(instance, method, path, strconv.Itoa(status)).Inc()
}

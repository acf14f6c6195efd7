package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roam",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "HTTP requests processed, by method, route pattern, and status.",
	}, []string{"method", "pattern", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roam",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency, by method and route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "pattern"})

	workflowTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roam",
		Subsystem: "activity",
		Name:      "workflow_transitions_total",
		Help:      "Attendance workflow transitions, by kind.",
	}, []string{"transition"})

	followRepairs = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "roam",
		Subsystem: "follow",
		Name:      "edge_repairs_total",
		Help:      "Asymmetric follow edges repaired by the reconciler.",
	})
)

// Handler returns the HTTP handler serving the metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one completed HTTP request
func ObserveRequest(method, pattern string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(method, pattern, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, pattern).Observe(duration.Seconds())
}

// RecordWorkflowTransition counts a committed attendance workflow transition.
// Known kinds: mark_done, confirm, deny, rate.
func RecordWorkflowTransition(transition string) {
	workflowTransitions.WithLabelValues(transition).Inc()
}

// RecordFollowRepair counts a follow edge repaired by the reconciler
func RecordFollowRepair() {
	followRepairs.Inc()
}

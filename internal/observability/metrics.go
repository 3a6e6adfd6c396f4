package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wirekit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	inspectOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "inspect",
			Name:      "operations_total",
			Help:      "Inspection operations by kind and outcome.",
		},
		[]string{"node", "op", "outcome"},
	)
	inspectBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wirekit",
			Subsystem: "inspect",
			Name:      "input_bytes_total",
			Help:      "Bytes of input accepted per operation.",
		},
		[]string{"node", "op"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, inspectOps, inspectBytes)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordInspect(node, op string, inputBytes int, err error) {
	RegisterMetrics()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	inspectOps.WithLabelValues(node, op, outcome).Inc()
	inspectBytes.WithLabelValues(node, op).Add(float64(inputBytes))
}

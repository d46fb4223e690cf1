package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "zra_demo"

// PrometheusCollector records outbound request metrics and workflow outcomes.
// It satisfies the HTTP client's MetricsCollector interface.
type PrometheusCollector struct {
	requestDuration *prometheus.HistogramVec
	requestCount    *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec
	workflowResults *prometheus.CounterVec
}

// NewPrometheusCollector creates the collector and registers its metrics with reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests to the tax-authority service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "requests_total",
			Help:      "Requests sent to the tax-authority service.",
		}, []string{"method", "path", "status"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "service",
			Name:      "request_errors_total",
			Help:      "Requests that failed or returned an error status.",
		}, []string{"method", "path"}),
		workflowResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workflow",
			Name:      "results_total",
			Help:      "Settled workflow dispatches by workflow and outcome.",
		}, []string{"workflow", "outcome"}),
	}

	reg.MustRegister(c.requestDuration, c.requestCount, c.requestErrors, c.workflowResults)
	return c
}

func (c *PrometheusCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	c.requestDuration.WithLabelValues(method, path, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordRequestCount(method, path string, statusCode int) {
	c.requestCount.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (c *PrometheusCollector) RecordRequestError(method, path string) {
	c.requestErrors.WithLabelValues(method, path).Inc()
}

// RecordWorkflowResult counts a settled dispatch. outcome is success, validation,
// service or transport.
func (c *PrometheusCollector) RecordWorkflowResult(workflow, outcome string) {
	c.workflowResults.WithLabelValues(workflow, outcome).Inc()
}

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheusCollector(reg)

	c.RecordRequestCount("POST", "/api/verify", 200)
	c.RecordRequestCount("POST", "/api/verify", 200)
	c.RecordRequestCount("POST", "/api/compliance", 400)
	c.RecordRequestError("POST", "/api/compliance")
	c.RecordRequestDuration("POST", "/api/verify", 200, 15*time.Millisecond)
	c.RecordWorkflowResult("verify", "success")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestCount.WithLabelValues("POST", "/api/verify", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestCount.WithLabelValues("POST", "/api/compliance", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestErrors.WithLabelValues("POST", "/api/compliance")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.workflowResults.WithLabelValues("verify", "success")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.requestDuration))
}

func TestNewPrometheusCollector_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusCollector(reg)

	assert.Panics(t, func() { NewPrometheusCollector(reg) })
}

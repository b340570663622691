package main

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	edits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "test_edits_total",
		Help: "Edits",
	}, []string{"op"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "test_latency_seconds",
		Help: "Latency",
	})
	reg.MustRegister(edits, latency)

	edits.WithLabelValues("set_value").Add(3)
	latency.Observe(0.5)

	var buf bytes.Buffer
	require.NoError(t, writeMetrics(&buf, reg))
	out := buf.String()

	assert.Contains(t, out, "# TYPE test_edits_total counter")
	assert.Contains(t, out, `test_edits_total{op="set_value"} 3`)
	assert.Contains(t, out, "# TYPE test_latency_seconds histogram")
	assert.Contains(t, out, `test_latency_seconds_bucket{le="1"} 1`)
	assert.Contains(t, out, "test_latency_seconds_sum 0.5")
	assert.Contains(t, out, "test_latency_seconds_count 1")
}

func TestWriteMetricsEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeMetrics(&buf, prometheus.NewRegistry()))
	assert.Empty(t, buf.String())
}

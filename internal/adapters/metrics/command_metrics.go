package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes used as the "outcome" label
const (
	outcomeHandled  = "handled"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// CommandMetricsCollector tracks every turn command and query dispatched by the mediator
type CommandMetricsCollector struct {
	latency  *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

func NewCommandMetricsCollector() *CommandMetricsCollector {
	labels := []string{"request", "outcome"}
	return &CommandMetricsCollector{
		// Requests never leave the process, so the scale starts at 100µs
		latency: histogramVec("request_duration_seconds", "Time spent handling a turn command or query",
			prometheus.ExponentialBuckets(0.0001, 4, 8), labels...),
		requests: counterVec("requests_total", "Turn commands and queries handled, by outcome", labels...),
	}
}

func (c *CommandMetricsCollector) Register() error {
	return register(c.latency, c.requests)
}

// Observe records one dispatched request
func (c *CommandMetricsCollector) Observe(request, outcome string, elapsed time.Duration) {
	c.latency.WithLabelValues(request, outcome).Observe(elapsed.Seconds())
	c.requests.WithLabelValues(request, outcome).Inc()
}

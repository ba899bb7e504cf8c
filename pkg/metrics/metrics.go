// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific collectors.
	Registry = prometheus.NewRegistry()

	publishTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vibejam",
			Name:      "publish_total",
			Help:      "Publish attempts by outcome.",
		},
		[]string{"outcome"},
	)

	publishStepFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vibejam",
			Name:      "publish_step_failures_total",
			Help:      "Publish write steps that failed, by step.",
		},
		[]string{"step"},
	)

	canvasClaims = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vibejam",
			Name:      "canvas_claims_total",
			Help:      "Canvas profile claims by outcome.",
		},
		[]string{"outcome"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vibejam",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	Registry.MustRegister(publishTotal, publishStepFailures, canvasClaims, httpRequests)
}

// Handler serves the collectors in Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RecordPublish(outcome string) {
	publishTotal.WithLabelValues(outcome).Inc()
}

func RecordPublishStepFailure(step string) {
	publishStepFailures.WithLabelValues(step).Inc()
}

func RecordCanvasClaim(outcome string) {
	canvasClaims.WithLabelValues(outcome).Inc()
}

func RecordHTTPRequest(method, path, status string) {
	httpRequests.WithLabelValues(method, path, status).Inc()
}

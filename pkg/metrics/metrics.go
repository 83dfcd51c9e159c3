// Package metrics содержит Prometheus-метрики сервиса.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campus_safety"

var (
	oracleCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oracle",
			Name:      "calls_total",
			Help:      "Oracle calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	oracleRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oracle",
			Name:      "retries_total",
			Help:      "Rate-limited oracle calls that were retried",
		},
		[]string{"operation"},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Incident store operations",
		},
		[]string{"operation"},
	)

	sosTransmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sos",
			Name:      "transmissions_total",
			Help:      "SOS messages logged to the store",
		},
	)

	webhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "webhook",
			Name:      "deliveries_total",
			Help:      "SOS webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	// HTTPRequestDuration - длительность HTTP-запросов по маршруту
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route", "status"},
	)
)

func RecordOracleCall(operation, outcome string) {
	oracleCalls.WithLabelValues(operation, outcome).Inc()
}

func RecordOracleRetry(operation string) {
	oracleRetries.WithLabelValues(operation).Inc()
}

func RecordStoreOperation(operation string) {
	storeOperations.WithLabelValues(operation).Inc()
}

func RecordSOSTransmission() {
	sosTransmissions.Inc()
}

func RecordWebhookDelivery(outcome string) {
	webhookDeliveries.WithLabelValues(outcome).Inc()
}

func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

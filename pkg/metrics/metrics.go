package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MQ consume latency (ms)
	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"routing_key", "queue"},
	)

	// Analysis pipeline latency (seconds)
	AnalyzeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analyze_duration_seconds",
			Help:    "Message analysis duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
		[]string{"source"}, // source: api, worker
	)

	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Classification outcomes
	ClassificationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "message_classification_count",
			Help: "Total number of classified messages by category",
		},
		[]string{"category"},
	)

	// Messages processed
	MessageProcessedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "message_processed_count",
			Help: "Total number of messages processed",
		},
		[]string{"status"}, // status: success, failed, duplicate
	)
)

// RecordMQConsumeLatency records MQ consumption latency.
func RecordMQConsumeLatency(routingKey, queue string, duration time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(duration.Milliseconds()))
}

// RecordAnalyzeDuration records one analysis pass.
func RecordAnalyzeDuration(source string, duration time.Duration) {
	AnalyzeDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordHTTPRequestDuration records HTTP request latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementClassification increments the per-category counter.
func IncrementClassification(category string) {
	ClassificationCount.WithLabelValues(category).Inc()
}

// IncrementMessageProcessed increments the processed counter.
func IncrementMessageProcessed(status string) {
	MessageProcessedCount.WithLabelValues(status).Inc()
}

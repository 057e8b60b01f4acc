// Package metrics exposes Prometheus collectors for ingestion and webhook delivery.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordEventIngested records an accepted event by severity level.
func RecordEventIngested(level string) {
	eventsIngested.WithLabelValues(level).Inc()
}

// RecordIssueCreated records the creation of a new issue.
func RecordIssueCreated() {
	issuesCreated.Inc()
}

// RecordWebhookDelivery records a webhook delivery attempt and its outcome.
func RecordWebhookDelivery(providerType string, success bool) {
	webhookDeliveries.WithLabelValues(providerType, strconv.FormatBool(success)).Inc()
}

// ObserveIngestDuration records how long an ingestion API request took.
func ObserveIngestDuration(endpoint string, d time.Duration) {
	ingestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

var (
	// Counter metrics
	eventsIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crashvault_events_ingested_total",
			Help: "Total number of events accepted by the ingestion API",
		},
		[]string{"level"},
	)

	issuesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crashvault_issues_created_total",
			Help: "Total number of new issues created by fingerprint grouping",
		},
	)

	webhookDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crashvault_webhook_deliveries_total",
			Help: "Total number of webhook delivery attempts",
		},
		[]string{"type", "success"},
	)

	// Histogram metrics
	ingestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crashvault_ingest_request_seconds",
			Help:    "Time spent handling ingestion API requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(eventsIngested, issuesCreated, webhookDeliveries, ingestDuration)
}

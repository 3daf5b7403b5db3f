package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Notification consumer outcomes.
const (
	outcomeHandled      = "handled"
	outcomeDeadLettered = "dead_lettered"
	// Neither handled nor dead-lettered; the message stays uncommitted.
	outcomeStuck = "stuck"
)

// unparsedEvent labels messages whose event type could not be read.
const unparsedEvent = "unparsed"

var (
	notificationEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notification_consumer",
			Name:      "events_total",
			Help:      "Notification events consumed, by event type and outcome",
		},
		[]string{"event_type", "outcome"},
	)

	// Buckets cover email sends including retries.
	notificationHandleDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "notification_consumer",
			Name:      "handle_duration_seconds",
			Help:      "Time spent rendering and sending the emails of one event",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"event_type"},
	)

	notificationLag = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "notification_consumer",
			Name:      "lag_seconds",
			Help:      "Time from publishing an event to handling it",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "notification_consumer",
			Name:      "commit_errors_total",
			Help:      "Kafka commit errors",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_view_requests_total",
			Help:      "Order confirmation view requests by outcome",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "order_view_duration_seconds",
			Help:      "Latency of the order confirmation view",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		notificationEvents,
		notificationHandleDuration,
		notificationLag,
		commitErrors,

		orderRequestTotal,
		orderRequestDuration,
	)
}

// Package metrics defines the skill's Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Error kinds reported by the dispatcher.
const (
	ErrorKindHandler   = "handler"
	ErrorKindPanic     = "panic"
	ErrorKindNoHandler = "no_handler"
)

var (
	HandlerInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "santa_skill_handler_invocations_total",
			Help: "Total number of turns handled, by handler",
		},
		[]string{"handler_id", "handler_type"},
	)

	HandlerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "santa_skill_handler_duration_seconds",
			Help:    "Time spent in a handler",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler_id"},
	)

	DispatchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "santa_skill_dispatch_errors_total",
			Help: "Total number of turns answered with a fallback response, by kind",
		},
		[]string{"kind"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "santa_skill_requests_total",
			Help: "Total number of webhook requests, by request type",
		},
		[]string{"request_type"},
	)
)

// Collectors returns every skill collector for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		HandlerInvocationsTotal,
		HandlerDuration,
		DispatchErrorsTotal,
		RequestsTotal,
	}
}

// ObserveHandler records one invocation of a handler.
func ObserveHandler(handlerID, handlerType string, elapsed time.Duration) {
	HandlerInvocationsTotal.WithLabelValues(handlerID, handlerType).Inc()
	HandlerDuration.WithLabelValues(handlerID).Observe(elapsed.Seconds())
}

// ObserveError records a fallback response of the given kind.
func ObserveError(kind string) {
	DispatchErrorsTotal.WithLabelValues(kind).Inc()
}

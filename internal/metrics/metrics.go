// Package metrics declares the Prometheus collectors of the converter.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "currency_converter"

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultStale   = "stale"
)

var (
	// HTTPRequestsTotal counts served requests by route pattern, method and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests served.",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// RateRefreshTotal counts rate table refreshes by result.
	RateRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_refresh_total",
			Help:      "Number of rate table refreshes.",
		},
		[]string{"result"},
	)

	// ConversionsTotal counts conversion requests by result.
	ConversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Number of conversion requests.",
		},
		[]string{"result"},
	)

	// RateTableSize is the number of currencies in the current rate table.
	RateTableSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rate_table_currencies",
			Help:      "Number of currencies in the cached rate table.",
		},
	)
)

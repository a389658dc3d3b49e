// Package metrics defines the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route pattern,
	// and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voucher_api_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voucher_api_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// RateLimitedTotal counts requests rejected by a rate gate, by gate name.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voucher_api_rate_limited_total",
			Help: "Total number of requests rejected by a rate limiter.",
		},
		[]string{"gate"},
	)

	// VouchersCreatedTotal counts successfully created vouchers.
	VouchersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voucher_api_vouchers_created_total",
			Help: "Total number of vouchers created.",
		},
	)

	// PublicLookupsTotal counts public reservation-code lookups by outcome
	// ("found" or "not_found").
	PublicLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voucher_api_public_lookups_total",
			Help: "Total number of public voucher lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

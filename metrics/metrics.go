package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts calls to the venue-booking backend.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mandapdash_upstream_requests_total",
		Help: "Requests sent to the venue-booking backend",
	}, []string{"resource", "method", "code"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mandapdash_upstream_request_duration_seconds",
		Help:    "Latency of backend requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mandapdash_notifications_total",
		Help: "Notifications pushed to providers, by level",
	}, []string{"level"})

	// ViewLoads counts view loads by view and resulting status.
	ViewLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mandapdash_view_loads_total",
		Help: "Dashboard view loads by outcome",
	}, []string{"view", "status"})
)

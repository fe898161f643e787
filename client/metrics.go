package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twitch_client",
			Name:      "requests_total",
			Help:      "API requests by operation and outcome (OK, Transport, Status, Decode).",
		},
		[]string{"op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "twitch_client",
			Name:      "request_duration_seconds",
			Help:      "Time spent waiting on the transport per request.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

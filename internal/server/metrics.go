package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upoints_http_requests_total",
		Help: "Number of HTTP requests by method, path and status code",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upoints_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	markersLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "upoints_markers_loaded",
		Help: "Number of markers served by the API",
	})
)

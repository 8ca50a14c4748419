// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_requests_total",
			Help: "Total number of search requests handled",
		},
		[]string{"status"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "search_request_duration_seconds",
			Help: "Duration of search request processing in seconds",
		},
		[]string{"status"},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_results_returned",
			Help:    "Number of listings returned per search page",
			Buckets: prometheus.LinearBuckets(0, 10, 6),
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_cache_requests_total",
			Help: "Search cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

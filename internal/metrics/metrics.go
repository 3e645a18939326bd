// Package metrics defines Prometheus metrics for the storefront catalog.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	})

	PanicsRecoveredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_recovered_total",
		Help:      "Total number of handler panics recovered by the server.",
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last /healthz probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last /readyz probe succeeded.",
	})
)

// Listing metrics.
var (
	ListingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "listing_duration_seconds",
		Help:      "Duration of storefront listing assembly in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	ListingErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_errors_total",
		Help:      "Total number of failed storefront listings.",
	}, []string{"endpoint"})

	ListingResultCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "listing_result_count",
		Help:      "Number of products matching a storefront listing.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1 .. 512
	})
)

// Facet cache metrics.
var (
	FacetCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "facet_cache_hits_total",
		Help:      "Total number of facet lookups served from cache.",
	}, []string{"field"})

	FacetCacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "facet_cache_misses_total",
		Help:      "Total number of facet lookups that went to the store.",
	}, []string{"field"})

	FacetCacheErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "facet_cache_errors_total",
		Help:      "Total number of facet cache read or write failures.",
	})
)

// Catalog write metrics.
var (
	CatalogWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "writes_total",
		Help:      "Total number of catalog writes by entity and operation.",
	}, []string{"entity", "op"})

	ImagesStoredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "images_stored_total",
		Help:      "Total number of processed images written to storage.",
	}, []string{"kind"})
)

// Scheduler metrics.
var (
	PromotionsExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "promotions_expired_total",
		Help:      "Total number of category promotions cleared after expiry.",
	})

	SchedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduler_runs_total",
		Help:      "Total number of scheduled job runs by job and status.",
	}, []string{"job_name", "status"})
)

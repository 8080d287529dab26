// Dharohar - Indian Cultural Heritage Analytics and Exploration
// Copyright 2026 Arjun V. (arjunv-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjunv-dev/dharohar

// Package metrics declares the Prometheus collectors exposed on /metrics.
// All collectors are registered with the default registry via promauto at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dharohar",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestsTotal counts requests per route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dharohar",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	// RecommendationsTotal counts preference rankings served.
	RecommendationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dharohar",
			Subsystem: "recommend",
			Name:      "rankings_total",
			Help:      "Total preference-based rankings computed.",
		},
	)

	// NearestQueriesTotal counts nearest-neighbor lookups served.
	NearestQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dharohar",
			Subsystem: "recommend",
			Name:      "nearest_queries_total",
			Help:      "Total nearest-neighbor queries computed.",
		},
	)

	// CSVExportsTotal counts dataset exports by table.
	CSVExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dharohar",
			Subsystem: "export",
			Name:      "csv_total",
			Help:      "Total CSV exports served, by dataset.",
		},
		[]string{"dataset"},
	)

	// CacheHitsTotal counts TTL cache hits.
	CacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dharohar",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total response cache hits.",
		},
	)

	// CacheMissesTotal counts TTL cache misses.
	CacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dharohar",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total response cache misses.",
		},
	)
)

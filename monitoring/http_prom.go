// Copyright 2025 the op-atlas authors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "atlas_http_requests_total",
	Help: "Total number of handled HTTP requests",
}, []string{"method", "status"})

var RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "atlas_http_request_duration_seconds",
	Help:    "Duration of handled HTTP requests in seconds",
	Buckets: prometheus.DefBuckets,
})

var ReplaceCollectionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "atlas_replace_collection_total",
	Help: "Total number of replace-collection transactions by entity and outcome",
}, []string{"entity", "outcome"})

// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package docs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// serverMetrics holds the Prometheus instruments for the docs server. They
// live on a private registry so embedding binaries keep their default
// registry clean.
type serverMetrics struct {
	registry       *prometheus.Registry
	requests       *prometheus.CounterVec
	rebuilds       *prometheus.CounterVec
	rebuildSeconds prometheus.Histogram
}

func newServerMetrics() *serverMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &serverMetrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "specforge",
			Subsystem: "docs",
			Name:      "requests_total",
			Help:      "HTTP requests served, by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		rebuilds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "specforge",
			Subsystem: "docs",
			Name:      "rebuilds_total",
			Help:      "Document rebuilds, by result.",
		}, []string{"result"}),
		rebuildSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "specforge",
			Subsystem: "docs",
			Name:      "rebuild_duration_seconds",
			Help:      "Time spent rebuilding the served document.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

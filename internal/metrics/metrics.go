// Package metrics holds the Prometheus collectors of the assignment engine.
// Collectors register on the default registry, which /metrics serves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "moto_catalog"

	// StatusOK marks a successful target or invalidation
	StatusOK = "ok"
	// StatusError marks a failed target or invalidation
	StatusError = "error"
)

var (
	// BulkAssignTargets counts bulk assignment targets by component type and outcome
	BulkAssignTargets = MustRegisterCounterVec(namespace, "assignment", "bulk_targets_total",
		"Number of bulk assignment targets processed.", "component_type", "status")

	// BulkAssignDuration observes how long one bulk assignment call takes
	BulkAssignDuration = MustRegisterHistogramVec(namespace, "assignment", "bulk_duration_seconds",
		"Duration of bulk assignment calls.", prometheus.DefBuckets, "component_type")

	// Resolutions counts resolved components by source
	Resolutions = MustRegisterCounterVec(namespace, "resolution", "resolved_total",
		"Number of component resolutions by source.", "source")

	// CacheLookups counts read-view cache lookups by namespace and result
	CacheLookups = MustRegisterCounterVec(namespace, "cache", "lookups_total",
		"Number of read-view cache lookups.", "namespace", "result")

	// Invalidations counts cache invalidations by target label and outcome
	Invalidations = MustRegisterCounterVec(namespace, "cache", "invalidations_total",
		"Number of cache invalidations applied after mutations.", "target", "status")

	// DeletionsBlocked counts component deletions refused because of usage
	DeletionsBlocked = MustRegisterCounterVec(namespace, "usage", "deletions_blocked_total",
		"Number of component deletions refused because the component is in use.", "component_type")
)

// MustRegisterCounterVec creates and registers a counter vector.
func MustRegisterCounterVec(namespace, component, name, help string, labelNames ...string) *prometheus.CounterVec {
	m := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: component,
		Name:      name,
		Help:      help,
	}, labelNames)
	prometheus.MustRegister(m)
	return m
}

// MustRegisterHistogramVec creates and registers a histogram vector.
func MustRegisterHistogramVec(namespace, component, name, help string, buckets []float64, labelNames ...string) *prometheus.HistogramVec {
	m := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: component,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labelNames)
	prometheus.MustRegister(m)
	return m
}

// Package metrics defines and registers all custom Prometheus metrics for the
// lolelink admin API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lolelink"

// CollectionOpsTotal counts resolved collection operations.
// Labels:
//   - entity: the collection name (e.g. "categories", "bookings")
//   - op: fetch, fetch_one, create, update, delete
//   - outcome: "fulfilled" or "rejected"
var CollectionOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "collection_ops_total",
		Help:      "Total number of resolved collection operations.",
	},
	[]string{"entity", "op", "outcome"},
)

// CollectionOpDuration measures how long one backend round-trip takes, from
// dispatch to resolution.
var CollectionOpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "collection_op_duration_seconds",
		Help:      "Duration of collection operations from dispatch to resolution.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity", "op"},
)

// CollectionSnapshotSize tracks the in-memory snapshot length per entity
// after each resolved operation.
var CollectionSnapshotSize = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "collection_snapshot_size",
		Help:      "Current number of records held in each entity snapshot.",
	},
	[]string{"entity"},
)

// AuthAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of console login attempts, by result.",
	},
	[]string{"result"},
)

// CollectionObserver adapts the metrics above to the collection store's
// observer hook.
func CollectionObserver(entity, op, outcome string, seconds float64, size int) {
	CollectionOpsTotal.WithLabelValues(entity, op, outcome).Inc()
	CollectionOpDuration.WithLabelValues(entity, op).Observe(seconds)
	CollectionSnapshotSize.WithLabelValues(entity).Set(float64(size))
}

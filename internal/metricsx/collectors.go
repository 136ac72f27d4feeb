// Package metricsx provides the Prometheus collectors the index shell
// reports through: operation latency, node-table size, edge count, and
// rejected inserts by error kind.
package metricsx

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace groups every go-hnsw metric under one prefix.
const Namespace = "go_hnsw"

// Collectors bundles the metrics the index shell updates. It is built
// against a prometheus.Registerer rather than the global default
// registry so tests can register against a private registry and avoid
// "duplicate metrics collector registration" panics across test runs.
type Collectors struct {
	OpLatency    *prometheus.HistogramVec
	IndexSize    prometheus.Gauge
	EdgeCount    prometheus.Gauge
	RejectedInserts *prometheus.CounterVec
}

// NewCollectors registers and returns a fresh Collectors bundle against
// reg. Pass prometheus.DefaultRegisterer in production, or
// prometheus.NewRegistry() in tests.
func NewCollectors(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		OpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "operation_latency_seconds",
				Help:      "Latency of index operations (add, search).",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 16),
			},
			[]string{"operation"},
		),
		IndexSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "index_nodes",
				Help:      "Number of nodes currently stored in the index.",
			},
		),
		EdgeCount: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "index_edges",
				Help:      "Total stored edges across all layers and both directions.",
			},
		),
		RejectedInserts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "rejected_inserts_total",
				Help:      "Inserts rejected, partitioned by error kind.",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(c.OpLatency, c.IndexSize, c.EdgeCount, c.RejectedInserts)
	return c
}

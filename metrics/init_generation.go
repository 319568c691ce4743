// SPDX-License-Identifier: MIT
// Package: motifnet/metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.MotifsPlaced = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "gcm_motifs_placed_total",
			Help:      "Motif instances placed by stub matching",
		},
		[]string{"topology"},
	)

	r.StubsDiscarded = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "gcm_stubs_discarded_total",
			Help:      "Stubs left over in a short trailing chunk",
		},
		[]string{"topology"},
	)

	r.ArtifactsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "gcm_artifacts_total",
			Help:      "Stub-matching artifacts by kind and action",
		},
		[]string{"kind", "action"},
	)

	r.GeneratedEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "gcm_edges",
			Help:      "Edge count of the last generated network",
		},
	)
}

// SPDX-License-Identifier: MIT
// Package: motifnet/metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.NetworkVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_vertices",
			Help:      "Vertex count of the last recorded network",
		},
	)

	r.NetworkEdges = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_edges",
			Help:      "Edges of the last recorded network by topology",
		},
		[]string{"topology"},
	)

	r.NetworkSelfLoops = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_self_loops",
			Help:      "Self-loops of the last recorded network",
		},
	)

	r.NetworkComponents = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_components",
			Help:      "Connected components of the last recorded network",
		},
	)

	r.GiantComponent = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "network_giant_component_vertices",
			Help:      "Vertices in the largest connected component",
		},
	)

	r.Deviation = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "correlation_deviation",
			Help:      "Absolute deviation from the target tensor by topology",
		},
		[]string{"topology"},
	)
}

// SPDX-License-Identifier: MIT
// Package: motifnet/metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRewireMetrics() {
	r.TrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rewire_trials_total",
			Help:      "Rewiring trials by outcome",
		},
		[]string{"outcome"},
	)

	r.AcceptedSwaps = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "rewire_accepted_swaps",
			Help:      "Accepted swaps at the last sample",
		},
	)

	r.Proposals = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "rewire_proposals",
			Help:      "Proposals evaluated at the last sample",
		},
	)

	r.AcceptanceRatio = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "rewire_acceptance_ratio",
			Help:      "Accepted over proposed swaps at the last sample",
		},
	)
}

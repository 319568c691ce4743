// SPDX-License-Identifier: MIT
// Package: motifnet/metrics
//
// metrics.go — recording helpers and textfile export.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/motifnet/bfs"
	"github.com/katalvlaran/motifnet/core"
	"github.com/katalvlaran/motifnet/correlation"
	"github.com/katalvlaran/motifnet/gcm"
	"github.com/katalvlaran/motifnet/rewire"
)

var _ rewire.Observer = (*Registry)(nil)

// ObserveTrial counts one rewiring trial.
func (r *Registry) ObserveTrial(o rewire.Outcome) {
	r.TrialsTotal.WithLabelValues(o.String()).Inc()
}

// ObserveSample records the running acceptance counters.
func (r *Registry) ObserveSample(accepted, proposals int, ratio float64) {
	r.AcceptedSwaps.Set(float64(accepted))
	r.Proposals.Set(float64(proposals))
	r.AcceptanceRatio.Set(ratio)
}

// RecordReport adds one generator report to the generation counters.
func (r *Registry) RecordReport(rep gcm.Report) {
	for topology, n := range rep.Motifs {
		r.MotifsPlaced.WithLabelValues(topology).Add(float64(n))
	}
	for topology, n := range rep.DiscardedStubs {
		r.StubsDiscarded.WithLabelValues(topology).Add(float64(n))
	}
	r.ArtifactsTotal.WithLabelValues("self_loop", "kept").Add(float64(rep.SelfLoopsKept))
	r.ArtifactsTotal.WithLabelValues("self_loop", "dropped").Add(float64(rep.SelfLoopsDropped))
	r.ArtifactsTotal.WithLabelValues("duplicate", "relabelled").Add(float64(rep.DuplicatesRelabelled))
	r.ArtifactsTotal.WithLabelValues("duplicate", "skipped").Add(float64(rep.DuplicatesSkipped))
	r.GeneratedEdges.Set(float64(rep.Edges))
}

// RecordNetwork snapshots the size and connectivity of net.
func (r *Registry) RecordNetwork(net *core.Network) error {
	stats := net.Stats()
	comps, err := bfs.Components(net)
	if err != nil {
		return fmt.Errorf("RecordNetwork: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.NetworkVertices.Set(float64(stats.VertexCount))
	r.NetworkSelfLoops.Set(float64(stats.SelfLoops))
	r.NetworkEdges.Reset()
	for _, topology := range net.Topologies() {
		r.NetworkEdges.WithLabelValues(topology).Set(float64(stats.EdgesByTopology[topology]))
	}
	r.NetworkComponents.Set(float64(len(comps)))
	giant := 0
	if len(comps) > 0 {
		giant = len(comps[0])
	}
	r.GiantComponent.Set(float64(giant))

	return nil
}

// RecordDeviation snapshots a deviation; the total is exported under the
// topology label "all".
func (r *Registry) RecordDeviation(d correlation.Deviation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deviation.Reset()
	for topology, v := range d.PerTopology {
		r.Deviation.WithLabelValues(topology).Set(v)
	}
	r.Deviation.WithLabelValues("all").Set(d.Total)
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: motifnet/metrics
//
// metrics_types.go — the Registry and its collectors.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "motifnet"

// Registry holds all collectors of one run.
type Registry struct {
	// Generation
	MotifsPlaced   *prometheus.CounterVec
	StubsDiscarded *prometheus.CounterVec
	ArtifactsTotal *prometheus.CounterVec
	GeneratedEdges prometheus.Gauge

	// Rewiring
	TrialsTotal     *prometheus.CounterVec
	AcceptedSwaps   prometheus.Gauge
	Proposals       prometheus.Gauge
	AcceptanceRatio prometheus.Gauge

	// Network
	NetworkVertices   prometheus.Gauge
	NetworkEdges      *prometheus.GaugeVec
	NetworkSelfLoops  prometheus.Gauge
	NetworkComponents prometheus.Gauge
	GiantComponent    prometheus.Gauge
	Deviation         *prometheus.GaugeVec

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide Registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})

	return defaultRegistry
}

// NewRegistry creates a Registry with every collector registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initGenerationMetrics()
	r.initRewireMetrics()
	r.initNetworkMetrics()

	return r
}

// Prometheus returns the underlying registry, e.g. for promhttp.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

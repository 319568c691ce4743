// SPDX-License-Identifier: MIT

// Package metrics exposes generation and rewiring diagnostics as Prometheus
// collectors.
//
// A Registry owns a private prometheus.Registry. It implements
// rewire.Observer, so passing it to rewire.WithObserver streams per-trial
// outcomes and sampled acceptance ratios into counters and gauges. The
// Record* helpers snapshot a network, a generator report or a correlation
// deviation. WriteTextfile dumps everything in the text exposition format,
// ready for a node_exporter textfile collector.
package metrics

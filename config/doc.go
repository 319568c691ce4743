// SPDX-License-Identifier: MIT

// Package config loads a motifnet run description from YAML and resolves it
// into the typed inputs of the gcm, jointdegree, correlation and rewire
// packages.
//
// A minimal file:
//
//	vertices: 1000
//	seed: 7
//	topologies:
//	  - {name: 2-clique, motif: clique, size: 2}
//	  - {name: 3-clique, motif: clique, size: 3}
//	joint_degree:
//	  distribution: {"1,0": 0.5, "2,1": 0.5}
//
// Zero values in the rewire section select the engine's defaults.
package config

// SPDX-License-Identifier: MIT
// Package: motifnet/jointdegree
//
// errors.go — sentinel errors for the jointdegree package.

package jointdegree

import "errors"

var (
	// ErrEmptyDistribution indicates a distribution with no positive weight.
	ErrEmptyDistribution = errors.New("jointdegree: empty distribution")

	// ErrNegativeWeight indicates a negative or non-finite weight.
	ErrNegativeWeight = errors.New("jointdegree: negative weight")

	// ErrInconsistentKeys indicates keys of differing lengths or a key whose
	// length does not match the topology count.
	ErrInconsistentKeys = errors.New("jointdegree: inconsistent keys")

	// ErrNoCommonKey indicates per-topology estimates that share no key, so
	// they cannot be put on a common scale.
	ErrNoCommonKey = errors.New("jointdegree: no common key across topologies")

	// ErrBadMotifSize indicates a motif size < 1 or a size list whose length
	// does not match the sequence.
	ErrBadMotifSize = errors.New("jointdegree: bad motif size")
)

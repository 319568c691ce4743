// SPDX-License-Identifier: MIT
// Package: motifnet/correlation
//
// errors.go — sentinel errors for the correlation package.

package correlation

import "errors"

var (
	// ErrMalformedKey indicates a degree-vector or pair key that does not parse
	// or a pair key with an odd number of components.
	ErrMalformedKey = errors.New("correlation: malformed key")

	// ErrTopologyMismatch indicates matrices and topology names that do not
	// line up one-to-one.
	ErrTopologyMismatch = errors.New("correlation: topology mismatch")

	// ErrNotSymmetric indicates a tensor whose entry differs from its reverse.
	ErrNotSymmetric = errors.New("correlation: matrix not symmetric")

	// ErrNotNormalised indicates a matrix whose entries do not sum to 1.
	ErrNotNormalised = errors.New("correlation: matrix not normalised")
)

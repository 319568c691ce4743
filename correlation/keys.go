// SPDX-License-Identifier: MIT
// Package: motifnet/correlation
//
// keys.go — degree vectors and pair keys in canonical text form.

package correlation

import (
	"fmt"
	"strconv"
	"strings"
)

// DegreeVector is a joint-degree or excess-degree vector.
type DegreeVector []int

// Key renders v as "a,b,...".
func (v DegreeVector) Key() string {
	buf := make([]byte, 0, 4*len(v))
	for i, k := range v {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(k), 10)
	}

	return string(buf)
}

// Excess returns a copy of v with component t decremented.
func (v DegreeVector) Excess(t int) DegreeVector {
	out := make(DegreeVector, len(v))
	copy(out, v)
	out[t]--

	return out
}

// Less orders vectors lexicographically, shorter first on a common prefix.
func (v DegreeVector) Less(w DegreeVector) bool {
	for i := 0; i < len(v) && i < len(w); i++ {
		if v[i] != w[i] {
			return v[i] < w[i]
		}
	}

	return len(v) < len(w)
}

// ParseDegreeVector parses "a,b,..." (spaces around entries are ignored).
func ParseDegreeVector(s string) (DegreeVector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("ParseDegreeVector(%q): empty: %w", s, ErrMalformedKey)
	}
	parts := strings.Split(s, ",")
	out := make(DegreeVector, len(parts))
	for i, p := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("ParseDegreeVector(%q): %v: %w", s, err, ErrMalformedKey)
		}
		out[i] = k
	}

	return out, nil
}

// PairKey is the concatenation left‖right of two excess-degree vectors.
type PairKey string

// NewPairKey joins left and right into a PairKey.
func NewPairKey(left, right DegreeVector) PairKey {
	return PairKey(left.Key() + "," + right.Key())
}

// Split returns the two halves of k.
func (k PairKey) Split() (DegreeVector, DegreeVector, error) {
	all, err := ParseDegreeVector(string(k))
	if err != nil {
		return nil, nil, err
	}
	if len(all)%2 != 0 {
		return nil, nil, fmt.Errorf("PairKey(%q).Split: odd length %d: %w", k, len(all), ErrMalformedKey)
	}
	half := len(all) / 2

	return all[:half], all[half:], nil
}

// Reverse returns right‖left.
func (k PairKey) Reverse() (PairKey, error) {
	l, r, err := k.Split()
	if err != nil {
		return "", err
	}

	return NewPairKey(r, l), nil
}

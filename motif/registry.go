// SPDX-License-Identifier: MIT
// Package: motifnet/motif
//
// registry.go — resolution of configuration names to shapes.

package motif

import (
	"fmt"
	"sort"
	"strings"
)

// Shape names accepted by Lookup.
const (
	NameClique  = "clique"
	NameCycle   = "cycle"
	NameDiamond = "diamond"
	NamePath    = "path"
	NameStar    = "star"
	NameWheel   = "wheel"
)

var registry = map[string]func(size int) Builder{
	NameClique:  Clique,
	NameCycle:   Cycle,
	NameDiamond: func(int) Builder { return Diamond() },
	NamePath:    Path,
	NameStar:    Star,
	NameWheel:   Wheel,
}

// Lookup resolves a shape name (case-insensitive) and size into a validated Builder.
//
// Errors:
//   - ErrUnknownMotif: name not registered.
//   - ErrTooFewVertices / ErrVertexCount: size invalid for the shape.
func Lookup(name string, size int) (Builder, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): known %v: %w", name, Names(), ErrUnknownMotif)
	}
	b := ctor(size)
	if b.Size() != size {
		return nil, fmt.Errorf("Lookup(%q): size %d, shape has %d: %w", name, size, b.Size(), ErrVertexCount)
	}
	if err := Validate(b); err != nil {
		return nil, fmt.Errorf("Lookup(%q): %w", name, err)
	}

	return b, nil
}

// Names returns the registered shape names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// SPDX-License-Identifier: MIT
// Package: motifnet/drawset
//
// set.go — dense slice + position index with swap-with-last removal.
//
// Complexity:
//   • Add, Remove, Contains, Draw: O(1) expected.
//   • Items: O(n) copy.

package drawset

import (
	"errors"

	"golang.org/x/exp/rand"
)

// ErrEmpty is returned by Draw on an empty set.
var ErrEmpty = errors.New("drawset: draw from empty set")

// Set is a uniform-draw set of comparable items.
type Set[T comparable] struct {
	rng   *rand.Rand
	items []T
	index map[T]int
}

// New returns an empty Set drawing from rng. capacity is a size hint.
// Panics if rng is nil.
func New[T comparable](rng *rand.Rand, capacity int) *Set[T] {
	if rng == nil {
		panic("drawset.New: nil rng")
	}
	if capacity < 0 {
		capacity = 0
	}

	return &Set[T]{
		rng:   rng,
		items: make([]T, 0, capacity),
		index: make(map[T]int, capacity),
	}
}

// Add inserts item; it reports false when item was already present.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)

	return true
}

// Remove deletes item; it reports false when item was absent.
func (s *Set[T]) Remove(item T) bool {
	pos, ok := s.index[item]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	moved := s.items[last]
	s.items[pos] = moved
	s.index[moved] = pos
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	delete(s.index, item)

	return true
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.index[item]

	return ok
}

// Len returns the number of items.
func (s *Set[T]) Len() int { return len(s.items) }

// Draw returns an item chosen uniformly at random without removing it.
func (s *Set[T]) Draw() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.items[s.rng.Intn(len(s.items))], nil
}

// Items returns a copy of the current contents in internal order.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}

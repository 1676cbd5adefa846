// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "fmt"

// Stats describes the memory layout of a Trie.
type Stats struct {
	Keys        int // inserted keys
	Capacity    int // allocated cells per array
	LastLink    int // highest cell in the free list
	States      int // occupied states, including the root
	Free        int // cells in the free list
	Leaves      int // states with the rest of a key in tail
	Endpoints   int // internal states that end a key
	TailBytes   int // sum of all tail lengths
	Relocations int // child sets moved to resolve collisions
}

// Stats returns the memory layout statistics, it walks all used cells.
func (t *Trie) Stats() Stats {
	s := Stats{
		Keys:        t.size,
		Capacity:    len(t.base),
		Relocations: t.relocations,
	}
	if t.base == nil {
		return s
	}

	s.LastLink = t.lastLink()
	for i := root; i < s.LastLink; i++ {
		if t.isFree(i) {
			continue
		}

		s.States++
		sfx := t.tail[i]
		s.TailBytes += len(sfx.str)

		switch {
		case t.base[i] == leafBase:
			s.Leaves++
		case sfx.ok:
			s.Endpoints++
		}
	}

	for l := t.secondLink(); l != sentinel; l = t.nextLink(l) {
		s.Free++
	}

	return s
}

// Density is the ratio of occupied states to the used address space.
func (s Stats) Density() float64 {
	if s.LastLink == 0 {
		return 0
	}
	return float64(s.States) / float64(s.LastLink)
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("keys: %d, states: %d, free: %d, leaves: %d, endpoints: %d, capacity: %d, relocations: %d",
		s.Keys, s.States, s.Free, s.Leaves, s.Endpoints, s.Capacity, s.Relocations)
}

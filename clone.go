// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "slices"

// Clone returns an independent deep copy of t.
//
// Tails are immutable strings and shared between the copies, the
// arrays are not.
func (t *Trie) Clone() *Trie {
	if t == nil {
		return nil
	}

	c := &Trie{
		cfg:         t.cfg,
		size:        t.size,
		relocations: t.relocations,
	}

	if t.base != nil {
		c.base = slices.Clone(t.base)
		c.check = slices.Clone(t.check)
		c.tail = slices.Clone(t.tail)
	}
	return c
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"iter"
	"strings"
)

// All returns an iterator over all keys in ascending byte order.
//
// The trie must not be modified during iteration.
func (t *Trie) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if t.base == nil {
			return
		}
		t.allRec(root, make([]byte, 0, 64), yield)
	}
}

// allRec, rec-descent the trie, path holds the labels from the root to s.
func (t *Trie) allRec(s int, path []byte, yield func(string) bool) bool {
	sfx := t.tail[s]

	if t.base[s] == leafBase {
		return yield(string(path) + sfx.str)
	}

	// an endpoint sorts before all keys below it
	if sfx.ok && !yield(string(path)) {
		return false
	}

	labels := t.children(s)
	for c := range labels.All() {
		if !t.allRec(t.base[s]+int(c), append(path, c), yield) {
			return false
		}
	}
	return true
}

// WithPrefix returns an iterator over all keys starting with prefix,
// in ascending byte order.
//
// The trie must not be modified during iteration.
func (t *Trie) WithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if t.base == nil {
			return
		}

		last := t.lastLink()
		state := root

		i := 0
		for ; i < len(prefix) && t.base[state] != leafBase; i++ {
			next := t.base[state] + int(prefix[i])
			if next >= last || t.check[next] != state {
				return
			}
			state = next
		}

		path := append(make([]byte, 0, len(prefix)+64), prefix[:i]...)

		// prefix ends inside a tail
		if t.base[state] == leafBase {
			if rest := t.tail[state].str; strings.HasPrefix(rest, prefix[i:]) {
				yield(string(path) + rest)
			}
			return
		}

		t.allRec(state, path, yield)
	}
}

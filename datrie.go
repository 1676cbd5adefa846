// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

const (
	sentinel  = 0  // head of the free list, never a trie state
	root      = 1  // root state, always occupied
	firstLink = 2  // lowest cell that can ever be free
	firstBase = 2  // lowest base, keeps every child at or above firstLink
	leafBase  = -1 // base marker of a leaf, the rest of the key is in tail
)

// suffix is the tail entry of a state. On a leaf it holds the
// unconsumed rest of the key, on an internal state an empty entry
// marks the state as the end of a key.
type suffix struct {
	str string
	ok  bool
}

// Trie is a mutable set of byte strings stored as a double-array trie.
// The zero value is ready to use.
//
// base and check are parallel arrays, the cell s is occupied iff
// check[s] >= root, then check[s] is the owner (parent) of s and
// base[s]+c is the child of s for the byte c. A free cell is a member of
// the ascending, circular, doubly-linked free list anchored at cell 0,
// base holds the negated predecessor and check the negated successor.
//
// A Trie is not safe for concurrent use, see [Trie.Clone] for
// read-only snapshots.
type Trie struct {
	base  []int
	check []int
	tail  []suffix

	cfg config

	size        int // number of keys
	relocations int
}

// New returns an empty Trie configured by opts.
func New(opts ...Option) *Trie {
	t := &Trie{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(&t.cfg)
	}
	t.init()
	return t
}

// init allocates the arrays on first use, so no constructor is needed.
// The root is occupied, the free list holds just the cell firstLink.
func (t *Trie) init() {
	if t.base != nil {
		return
	}
	if t.cfg.maxCapacity == 0 {
		t.cfg = defaultConfig()
	}

	n := min(t.cfg.initialCapacity, t.cfg.maxCapacity)
	t.base = make([]int, n)
	t.check = make([]int, n)
	t.tail = make([]suffix, n)

	t.base[root] = firstBase
	t.check[root] = root

	t.base[sentinel] = -firstLink
	t.check[sentinel] = -firstLink
	t.base[firstLink] = -sentinel
	t.check[firstLink] = -sentinel
}

// Size returns the number of keys.
func (t *Trie) Size() int {
	return t.size
}

// Find reports whether key was inserted before.
func (t *Trie) Find(key string) bool {
	if t.base == nil {
		return false
	}

	last := t.lastLink()
	state := root

	i := 0
	for ; i < len(key) && t.base[state] != leafBase; i++ {
		next := t.base[state] + int(key[i])
		if next >= last || t.check[next] != state {
			return false
		}
		state = next
	}

	// either a leaf with the rest in tail or the key is exhausted
	sfx := t.tail[state]
	return sfx.ok && sfx.str == key[i:]
}

// Release drops all keys and frees the arrays. The trie is empty
// afterwards and may be used again.
func (t *Trie) Release() {
	clear(t.tail)

	t.base = nil
	t.check = nil
	t.tail = nil

	t.size = 0
	t.relocations = 0
}

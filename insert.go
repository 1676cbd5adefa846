// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "strings"

// Insert adds key to the trie. Inserting a key twice is a no-op.
//
// The error is either [ErrOutOfMemory] or [ErrInvariant], in both cases
// the trie is left in an undefined state and must not be used further.
func (t *Trie) Insert(key string) error {
	_, err := t.Add(key)
	return err
}

// Add is like [Trie.Insert] but reports whether key was new.
func (t *Trie) Add(key string) (added bool, err error) {
	t.init()

	state := root
	for i := 0; i < len(key); i++ {
		next := t.base[state] + int(key[i])

		// unknown territory or the slot belongs to another state
		if next >= t.lastLink() || t.check[next] != state {
			if err := t.insertBranch(state, key, i); err != nil {
				return false, err
			}
			t.size++
			return true, nil
		}

		if t.base[next] == leafBase {
			return t.unfold(next, key[i+1:])
		}

		state = next
	}

	// key exhausted on an internal state, mark it as endpoint
	if t.tail[state].ok {
		return false, nil
	}
	t.tail[state] = suffix{ok: true}
	t.size++

	return true, nil
}

// insertBranch creates a new leaf below s for key[i], carrying the rest
// of the key as tail. A taken slot is resolved by relocation first.
func (t *Trie) insertBranch(s int, key string, i int) error {
	c := key[i]
	next := t.base[s] + int(c)

	if err := t.ensure(next); err != nil {
		return err
	}

	if owner := t.check[next]; owner >= root {
		var err error
		if s, err = t.resolve(s, owner, c); err != nil {
			return err
		}
	}

	return t.addLeaf(s, c, key[i+1:])
}

// addLeaf occupies the slot for c below s as a leaf with tail rest.
func (t *Trie) addLeaf(s int, c byte, rest string) error {
	next := t.base[s] + int(c)
	if err := t.occupy(next, s); err != nil {
		return err
	}

	t.base[next] = leafBase
	t.tail[next] = suffix{str: strings.Clone(rest), ok: true}
	return nil
}

// unfold handles a key that runs into the leaf s, rest is the part of
// the key behind s.
//
// The common prefix of rest and the stored tail becomes a chain of
// single-child states, at the point of divergence two sibling leaves
// are created, or an endpoint and one leaf if one string ends there.
func (t *Trie) unfold(s int, rest string) (bool, error) {
	old := t.tail[s].str
	n := commonPrefixLen(rest, old)

	if n == len(rest) && n == len(old) {
		return false, nil
	}

	t.tail[s] = suffix{}

	for i := range n {
		c := rest[i]

		b, err := t.findBase(c)
		if err != nil {
			return false, err
		}

		t.base[s] = b
		if err := t.occupy(b+int(c), s); err != nil {
			return false, err
		}
		s = b + int(c)
	}

	a, o := rest[n:], old[n:]

	var err error
	switch {
	case a == "":
		t.tail[s] = suffix{ok: true}
		err = t.fork(s, o)
	case o == "":
		t.tail[s] = suffix{ok: true}
		err = t.fork(s, a)
	default:
		err = t.split(s, a, o)
	}

	if err != nil {
		return false, err
	}

	t.size++
	return true, nil
}

// fork gives the endpoint s a base and a single leaf for rest.
func (t *Trie) fork(s int, rest string) error {
	b, err := t.findBase(rest[0])
	if err != nil {
		return err
	}
	t.base[s] = b

	return t.addLeaf(s, rest[0], rest[1:])
}

// split gives s a base with room for both leaves a and o.
func (t *Trie) split(s int, a, o string) error {
	b, err := t.findCommonBase(a[0], o[0])
	if err != nil {
		return err
	}
	t.base[s] = b

	if err := t.addLeaf(s, a[0], a[1:]); err != nil {
		return err
	}
	return t.addLeaf(s, o[0], o[1:])
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

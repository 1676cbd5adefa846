// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "fmt"

// Verify checks the structural invariants of the double array and
// returns an error wrapping [ErrInvariant] for the first violation:
//
//   - every occupied state is reachable from its owner, base[owner]+c == state
//   - leaves carry a tail, internal states carry at most an empty endpoint tail
//   - the free list, walked from the sentinel, is strictly ascending, its
//     back links are consistent, it holds exactly the free cells up to the
//     last link and it closes the cycle at the sentinel
//   - cells behind the last link are untouched
//   - the number of key ends equals Size
//
// Verify walks all cells, it's meant for tests and debugging.
func (t *Trie) Verify() error {
	if t.base == nil {
		if t.size != 0 {
			return corrupt("released trie has size %d", t.size)
		}
		return nil
	}

	n := len(t.base)
	if len(t.check) != n || len(t.tail) != n {
		return corrupt("array lengths differ: base %d, check %d, tail %d", n, len(t.check), len(t.tail))
	}

	if t.check[root] != root {
		return corrupt("root owner is %d", t.check[root])
	}

	last := t.lastLink()
	if last < firstLink || last >= n {
		return corrupt("last link %d out of range [%d, %d)", last, firstLink, n)
	}

	occupied := make([]bool, last+1)
	occupied[root] = true

	keys, err := t.verifyState(root)
	if err != nil {
		return err
	}

	for s := firstLink; s <= last; s++ {
		owner := t.check[s]
		if owner < root {
			continue
		}
		if s == last {
			return corrupt("last link %d is occupied by %d", s, owner)
		}
		occupied[s] = true

		if owner >= last || t.check[owner] < root {
			return corrupt("state %d is owned by the free cell %d", s, owner)
		}

		ob := t.base[owner]
		if ob < firstBase || s-ob > 255 || s < ob {
			return corrupt("state %d is not reachable from owner %d with base %d", s, owner, ob)
		}

		k, err := t.verifyState(s)
		if err != nil {
			return err
		}
		keys += k
	}

	if err := t.verifyFreeList(occupied); err != nil {
		return err
	}

	for s := last + 1; s < n; s++ {
		if t.base[s] != 0 || t.check[s] != 0 || t.tail[s].ok {
			return corrupt("cell %d behind the last link %d is not empty", s, last)
		}
	}

	if keys != t.size {
		return corrupt("counted %d keys, size is %d", keys, t.size)
	}
	return nil
}

// verifyState checks the payload of the occupied state s and returns
// the number of keys ending in s.
func (t *Trie) verifyState(s int) (int, error) {
	sfx := t.tail[s]

	switch {
	case t.base[s] == leafBase:
		if !sfx.ok {
			return 0, corrupt("leaf %d has no tail", s)
		}
		return 1, nil
	case t.base[s] < firstBase:
		return 0, corrupt("state %d has invalid base %d", s, t.base[s])
	case sfx.ok && sfx.str != "":
		return 0, corrupt("internal state %d has tail %q", s, sfx.str)
	case sfx.ok:
		return 1, nil
	}
	return 0, nil
}

// verifyFreeList walks the list from the sentinel.
func (t *Trie) verifyFreeList(occupied []bool) error {
	last := t.lastLink()

	prev := sentinel
	for l, steps := t.secondLink(), 0; l != sentinel; l, steps = t.nextLink(l), steps+1 {
		if steps > last {
			return corrupt("free list does not close the cycle")
		}
		if l <= prev || l > last {
			return corrupt("free list not ascending: %d after %d", l, prev)
		}
		if occupied[l] {
			return corrupt("occupied state %d is in the free list", l)
		}
		if t.prevLink(l) != prev {
			return corrupt("free cell %d links back to %d, want %d", l, t.prevLink(l), prev)
		}
		if t.tail[l].ok {
			return corrupt("free cell %d has a tail", l)
		}

		for s := max(prev+1, firstLink); s < l; s++ {
			if !occupied[s] {
				return corrupt("free cell %d is missing in the free list", s)
			}
		}
		prev = l
	}

	if prev != last {
		return corrupt("free list ends at %d, last link is %d", prev, last)
	}
	return nil
}

func corrupt(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, a...))
}

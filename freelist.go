// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "fmt"

// The free list is threaded through the cells it governs:
//
//	base[s]  = -prev(s)
//	check[s] = -next(s)
//
// The sentinel cell 0 holds the last link in base and the first
// link in check. The list is ascending and circular.

func (t *Trie) lastLink() int { return -t.base[sentinel] }

func (t *Trie) secondLink() int { return -t.check[sentinel] }

func (t *Trie) nextLink(l int) int { return -t.check[l] }

func (t *Trie) prevLink(l int) int { return -t.base[l] }

func (t *Trie) isFree(s int) bool { return t.check[s] < root }

// freeAfter scans linearly from s to the first free cell.
// s must not be greater than the last link.
func (t *Trie) freeAfter(s int) int {
	for !t.isFree(s) {
		s++
	}
	return s
}

// linkFrom walks the free list from link l to the first link >= target.
// The list is extended first, so the walk always ends before the sentinel.
func (t *Trie) linkFrom(l, target int) (int, error) {
	if err := t.ensure(target); err != nil {
		return 0, err
	}

	for l < target {
		l = t.nextLink(l)
		if l == sentinel {
			return 0, fmt.Errorf("%w: free list exhausted below %d", ErrInvariant, target)
		}
	}
	return l, nil
}

// unlink splices the free cell s out of the list. The caller must write
// the owner into check[s] immediately afterwards.
func (t *Trie) unlink(s int) {
	prev, next := t.prevLink(s), t.nextLink(s)
	t.check[prev] = -next
	t.base[next] = -prev
}

// linkBefore threads the cell s into the list just before anchor. The
// caller is responsible to choose the anchor that keeps the list sorted.
func (t *Trie) linkBefore(s, anchor int) {
	prev := t.prevLink(anchor)

	t.base[s] = -prev
	t.check[s] = -anchor
	t.tail[s] = suffix{}

	t.check[prev] = -s
	t.base[anchor] = -s
}

// occupy takes the free cell s out of the list and assigns it to owner.
func (t *Trie) occupy(s, owner int) error {
	if err := t.ensure(s); err != nil {
		return err
	}
	if !t.isFree(s) {
		return fmt.Errorf("%w: state %d is already owned by %d", ErrInvariant, s, t.check[s])
	}

	t.unlink(s)
	t.check[s] = owner
	return nil
}

// vacate returns the occupied cell s to the free list at its sorted position.
func (t *Trie) vacate(s int) {
	t.linkBefore(s, t.freeAfter(s+1))
}

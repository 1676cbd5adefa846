// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"fmt"

	"github.com/gaissmai/datrie/internal/bitset"
)

// children returns the labels of all outgoing transitions of s.
func (t *Trie) children(s int) (labels bitset.BitSet256) {
	b := t.base[s]
	if b < firstBase {
		return
	}

	end := min(b+256, t.lastLink())
	for n := b; n < end; n++ {
		if t.check[n] == s {
			labels.Set(byte(n - b))
		}
	}
	return
}

// findBase returns the smallest base b with b+c free.
func (t *Trie) findBase(c byte) (int, error) {
	l, err := t.linkFrom(sentinel, firstBase+int(c))
	if err != nil {
		return 0, err
	}
	return l - int(c), nil
}

// findCommonBase returns a base b with b+c1 and b+c2 both free.
func (t *Trie) findCommonBase(c1, c2 byte) (int, error) {
	var labels bitset.BitSet256
	labels.Set(c1)
	labels.Set(c2)
	return t.findBaseForSet(&labels)
}

// findBaseForSet returns a base b with b+c free for every c in labels.
//
// Every free link >= firstBase+lo is a candidate for b+lo, lo being the
// smallest label, the remaining slots are tested until a candidate fits.
func (t *Trie) findBaseForSet(labels *bitset.BitSet256) (int, error) {
	lo, ok := labels.FirstSet()
	if !ok {
		return 0, fmt.Errorf("%w: no labels to place", ErrInvariant)
	}
	hi, _ := labels.LastSet()

	l, err := t.linkFrom(sentinel, firstBase+int(lo))
	if err != nil {
		return 0, err
	}

	for l != sentinel {
		b := l - int(lo)
		if err := t.ensure(b + int(hi)); err != nil {
			return 0, err
		}

		if t.fits(b, labels) {
			return b, nil
		}
		l = t.nextLink(l)
	}

	return 0, fmt.Errorf("%w: no base found for %d labels", ErrInvariant, labels.Size())
}

// fits reports whether b+c is free for all labels.
func (t *Trie) fits(b int, labels *bitset.BitSet256) bool {
	for c := range labels.All() {
		if !t.isFree(b + int(c)) {
			return false
		}
	}
	return true
}

// resolve makes room for the new label c of state s, whose slot is
// taken by a child of owner. The state with fewer children is moved,
// the new label counts for s, a tie moves s.
//
// s is returned since it moves too, if owner is the parent of s.
func (t *Trie) resolve(s, owner int, c byte) (int, error) {
	own := t.children(s)
	own.Set(c)

	rival := t.children(owner)

	if own.Size() <= rival.Size() {
		if _, err := t.relocate(s, own); err != nil {
			return s, err
		}
		return s, nil
	}

	oldBase := t.base[owner]
	moved := t.check[s] == owner

	newBase, err := t.relocate(owner, rival)
	if err != nil {
		return s, err
	}

	if moved {
		s = newBase + (s - oldBase)
	}
	return s, nil
}

// relocate moves all children of s to a new base where every label in
// reserve is free. Reserved labels without a child of s get no state,
// the caller creates them afterwards.
//
// Each child is copied to its new slot, its own children are pointed to
// the new slot and the old slot is returned to the free list.
func (t *Trie) relocate(s int, reserve bitset.BitSet256) (int, error) {
	oldBase := t.base[s]
	kids := t.children(s)

	newBase, err := t.findBaseForSet(&reserve)
	if err != nil {
		return 0, err
	}
	t.base[s] = newBase

	for c := range reserve.All() {
		if !kids.Test(c) {
			continue
		}

		from, to := oldBase+int(c), newBase+int(c)
		if err := t.occupy(to, s); err != nil {
			return 0, err
		}
		t.base[to] = t.base[from]
		t.tail[to] = t.tail[from]

		// the grandchildren now belong to the new slot
		if gb := t.base[from]; gb >= firstBase {
			end := min(gb+256, t.lastLink())
			for g := gb; g < end; g++ {
				if t.check[g] == from {
					t.check[g] = to
				}
			}
		}

		t.vacate(from)
	}

	t.relocations++
	return newBase, nil
}

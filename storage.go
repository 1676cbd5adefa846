// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "fmt"

// ensure guarantees that the cells s and s+1 exist and that the free
// list reaches at least up to s+1, so s is never the last link.
func (t *Trie) ensure(s int) error {
	if s+2 > len(t.base) {
		if err := t.grow(s + 2); err != nil {
			return err
		}
	}
	t.extendFreeList(s + 1)
	return nil
}

// grow doubles the arrays until they hold need cells. Existing cells
// keep their index, new cells are zero.
func (t *Trie) grow(need int) error {
	if need > t.cfg.maxCapacity {
		return fmt.Errorf("%w: %d cells needed, limit is %d", ErrOutOfMemory, need, t.cfg.maxCapacity)
	}

	n := max(len(t.base), minCapacity)
	for n < need {
		n *= 2
	}
	n = min(n, t.cfg.maxCapacity)

	base := make([]int, n)
	check := make([]int, n)
	tail := make([]suffix, n)

	copy(base, t.base)
	copy(check, t.check)
	copy(tail, t.tail)

	t.base, t.check, t.tail = base, check, tail
	return nil
}

// extendFreeList appends all untouched cells up to and including
// newLast to the end of the free list, in ascending order.
func (t *Trie) extendFreeList(newLast int) {
	last := t.lastLink()
	if newLast <= last {
		return
	}

	t.check[last] = -(last + 1)
	for s := last + 1; s < newLast; s++ {
		t.base[s] = -(s - 1)
		t.check[s] = -(s + 1)
	}

	t.base[newLast] = -(newLast - 1)
	t.check[newLast] = -sentinel
	t.base[sentinel] = -newLast
}

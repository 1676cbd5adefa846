// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Trie) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the arrays up to the last link to w, one cell per line.
func (t *Trie) dump(w io.Writer) {
	if t == nil || t.base == nil {
		return
	}

	last := t.lastLink()
	fmt.Fprintf(w, "### keys(%d), capacity(%d), last link(%d)\n", t.size, len(t.base), last)

	for s := 0; s <= last; s++ {
		fmt.Fprintf(w, "%6d %s\n", s, t.cellString(s))
	}
}

// cellString, one cell in human readable form.
func (t *Trie) cellString(s int) string {
	switch {
	case s == sentinel:
		return fmt.Sprintf("[head] first: %d, last: %d", t.secondLink(), t.lastLink())
	case s == root:
		return fmt.Sprintf("[root] base: %d%s", t.base[s], t.tailString(s))
	case t.isFree(s):
		return fmt.Sprintf("[free] prev: %d, next: %d", t.prevLink(s), t.nextLink(s))
	case t.base[s] == leafBase:
		return fmt.Sprintf("[leaf] owner: %d, label: %s%s", t.check[s], t.labelString(s), t.tailString(s))
	default:
		return fmt.Sprintf("[node] owner: %d, label: %s, base: %d%s", t.check[s], t.labelString(s), t.base[s], t.tailString(s))
	}
}

// labelString, the byte on the transition from the owner to s.
func (t *Trie) labelString(s int) string {
	return fmt.Sprintf("%q", byte(s-t.base[t.check[s]]))
}

func (t *Trie) tailString(s int) string {
	if sfx := t.tail[s]; sfx.ok {
		return fmt.Sprintf(", tail: %q", sfx.str)
	}
	return ""
}

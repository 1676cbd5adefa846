// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// kid, a key together with all keys it is a prefix of.
type kid struct {
	key  string
	kids []*kid
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Trie.Fprint].
func (t *Trie) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the ordered keys
// as string, just a wrapper for [Trie.Fprint].
// If Fprint returns an error, String panics.
func (t *Trie) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the ordered keys to w.
// A key is printed below the longest other key that is a prefix of it.
// Keys are quoted with Go escapes. If w is nil, Fprint panics.
//
//	▼
//	├─ "ca"
//	│  ├─ "car"
//	│  └─ "cat"
//	│     └─ "cats"
//	└─ "dog"
func (t *Trie) Fprint(w io.Writer) error {
	if t.size == 0 {
		return nil
	}

	// keys arrive in ascending order, so every prefix of a key
	// is on the stack when the key is seen
	top := &kid{}
	stack := []*kid{top}

	for key := range t.All() {
		for len(stack) > 1 && !strings.HasPrefix(key, stack[len(stack)-1].key) {
			stack = stack[:len(stack)-1]
		}

		k := &kid{key: key}
		parent := stack[len(stack)-1]
		parent.kids = append(parent.kids, k)
		stack = append(stack, k)
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}
	return top.fprintRec(w, "")
}

// fprintRec, the output is a hierarchical key tree starting with this kid.
func (k *kid) fprintRec(w io.Writer, pad string) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, kid := range k.kids {
		// ... treat last kid special
		if i == len(k.kids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%q\n", pad+glyphe, kid.key); err != nil {
			return err
		}

		if err := kid.fprintRec(w, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

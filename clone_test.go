// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"slices"
	"testing"

	"github.com/gaissmai/datrie/internal/tests/random"
)

func TestCloneNil(t *testing.T) {
	t.Parallel()

	var tr *Trie
	if tr.Clone() != nil {
		t.Error("Clone of nil trie must be nil")
	}

	empty := new(Trie)
	c := empty.Clone()
	if c == nil || c.Size() != 0 {
		t.Fatalf("Clone of empty trie: %v", c)
	}

	// the clone of a zero value is a zero value and usable
	mustInsert(t, c, "a")
	if empty.Find("a") {
		t.Error("insert into clone leaks into original")
	}
}

func TestCloneIndependent(t *testing.T) {
	t.Parallel()

	prng := newPRNG(3)
	words := random.Words(prng, 2*workLoadN())
	half := len(words) / 2

	tr := New()
	mustInsert(t, tr, words[:half]...)
	before := slices.Collect(tr.All())

	c := tr.Clone()
	if got := tr.dumpString(); got != c.dumpString() {
		t.Fatal("clone differs from original")
	}

	mustInsert(t, c, words[half:]...)
	mustVerify(t, c)
	mustVerify(t, tr)

	if got := slices.Collect(tr.All()); !slices.Equal(got, before) {
		t.Fatal("original changed by inserts into the clone")
	}
	if tr.Size() != half {
		t.Errorf("original Size: got %d, want %d", tr.Size(), half)
	}
	if c.Size() != len(words) {
		t.Errorf("clone Size: got %d, want %d", c.Size(), len(words))
	}

	for _, w := range words[half:] {
		if !c.Find(w) {
			t.Fatalf("clone Find(%q): false", w)
		}
	}

	// release of the original leaves the clone intact
	tr.Release()
	for _, w := range words {
		if !c.Find(w) {
			t.Fatalf("clone Find(%q) after Release of original: false", w)
		}
	}
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"slices"
	"testing"

	"github.com/gaissmai/datrie/internal/golden"
	"github.com/gaissmai/datrie/internal/tests/random"
)

func FuzzInsertFind(f *testing.F) {
	// Seed corpus
	f.Add(uint64(12345), 150, 6)
	f.Add(uint64(67890), 400, 12)
	f.Add(uint64(54321), 800, 3)
	// Edge-case leaning seeds
	f.Add(uint64(0), 64, 1)     // bias towards short keys
	f.Add(^uint64(0), 1024, 32) // long keys

	f.Fuzz(func(t *testing.T, seed uint64, n, maxLen int) {
		if n < 1 || n > 5000 || maxLen < 0 || maxLen > 64 {
			t.Skip("bounds")
		}

		prng := newPRNG(seed)

		tr := New(WithInitialCapacity(8))
		gold := golden.Set{}

		for range n {
			key := random.Binary(prng, maxLen)
			added, err := tr.Add(key)
			if err != nil {
				t.Fatalf("Add(%q): %v", key, err)
			}
			if want := gold.Insert(key); added != want {
				t.Fatalf("Add(%q): got added %v, want %v", key, added, want)
			}
		}

		if err := tr.Verify(); err != nil {
			t.Fatal(err)
		}

		var extra []string
		for range n {
			extra = append(extra, random.Binary(prng, maxLen))
		}
		compareGolden(t, tr, gold, extra)

		if got, want := slices.Collect(tr.All()), gold.AllSorted(); !slices.Equal(got, want) {
			t.Fatalf("All: got %d keys, want %d in sorted order", len(got), len(want))
		}
	})
}

func FuzzInsertKeys(f *testing.F) {
	f.Add("hello", "help", "")
	f.Add("cat", "car", "dog")
	f.Add("ab", "abc", "a")
	f.Add("\x00", "\x00\x00", "\xff")

	f.Fuzz(func(t *testing.T, a, b, c string) {
		keys := []string{a, b, c}

		tr := new(Trie)
		gold := golden.Set{}
		for _, key := range keys {
			if err := tr.Insert(key); err != nil {
				t.Fatalf("Insert(%q): %v", key, err)
			}
			gold.Insert(key)
		}

		if err := tr.Verify(); err != nil {
			t.Fatalf("%v\n%s", err, tr.dumpString())
		}
		compareGolden(t, tr, gold, nil)
	})
}

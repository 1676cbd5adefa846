// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package random

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestKey(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	for range 100 {
		k := Key(prng, "xyz", 8)

		if len(k) > 8 {
			t.Errorf("Key too long: %q", k)
		}

		if strings.Trim(k, "xyz") != "" {
			t.Errorf("Key outside alphabet: %q", k)
		}
	}
}

func TestBinary(t *testing.T) {
	prng := rand.New(rand.NewPCG(0, 0))

	for range 100 {
		if k := Binary(prng, 16); len(k) > 16 {
			t.Errorf("Binary too long: %d", len(k))
		}
	}
}

func TestWords(t *testing.T) {
	prng := rand.New(rand.NewPCG(42, 42))

	words := Words(prng, 500)
	if len(words) != 500 {
		t.Fatalf("Words returned %d, want 500", len(words))
	}

	seen := map[string]bool{}
	for _, w := range words {
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true

		if len(w) < 1 || len(w) > 12 {
			t.Errorf("word length out of range: %q", w)
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := Words(rand.New(rand.NewPCG(7, 7)), 50)
	b := Words(rand.New(rand.NewPCG(7, 7)), 50)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed, different words at %d: %q != %q", i, a[i], b[i])
		}
	}
}

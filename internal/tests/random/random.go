// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates deterministic test keys from a seeded PRNG.
package random

import (
	"math/rand/v2"
)

// Lower is a small alphabet, keys drawn from it share many prefixes.
const Lower = "abcdefghijklmnopqrstuvwxyz"

// Key returns a key of length [0..maxLen] drawn from alphabet.
func Key(prng *rand.Rand, alphabet string, maxLen int) string {
	n := prng.IntN(maxLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[prng.IntN(len(alphabet))]
	}
	return string(b)
}

// Binary returns a key of length [0..maxLen] with arbitrary bytes 0..255.
func Binary(prng *rand.Rand, maxLen int) string {
	n := prng.IntN(maxLen + 1)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(prng.UintN(256))
	}
	return string(b)
}

// Word returns a lowercase key of length [1..12], biased towards
// shared prefixes by picking from a reduced alphabet for the first bytes.
func Word(prng *rand.Rand) string {
	n := 1 + prng.IntN(12)
	b := make([]byte, n)
	for i := range b {
		if i < 3 {
			b[i] = Lower[prng.IntN(6)]
			continue
		}
		b[i] = Lower[prng.IntN(len(Lower))]
	}
	return string(b)
}

// Words returns n distinct words.
func Words(prng *rand.Rand, n int) []string {
	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	for len(words) < n {
		w := Word(prng)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

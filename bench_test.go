// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"fmt"
	"testing"

	"github.com/gaissmai/datrie/internal/tests/random"
)

var benchSizes = []int{1_000, 10_000, 100_000}

func BenchmarkInsert(b *testing.B) {
	for _, n := range benchSizes {
		words := random.Words(newPRNG(1), n)

		b.Run(fmt.Sprintf("words/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				tr := New()
				for _, w := range words {
					_ = tr.Insert(w)
				}
			}
			b.ReportMetric(float64(b.Elapsed().Nanoseconds())/float64(b.N*n), "ns/key")
		})
	}
}

func BenchmarkFind(b *testing.B) {
	for _, n := range benchSizes {
		prng := newPRNG(2)
		words := random.Words(prng, n)

		tr := New()
		for _, w := range words {
			_ = tr.Insert(w)
		}

		misses := make([]string, 0, n)
		for range n {
			misses = append(misses, random.Key(prng, random.Lower, 12))
		}

		b.Run(fmt.Sprintf("hit/%d", n), func(b *testing.B) {
			i := 0
			for b.Loop() {
				_ = tr.Find(words[i%n])
				i++
			}
		})

		b.Run(fmt.Sprintf("miss/%d", n), func(b *testing.B) {
			i := 0
			for b.Loop() {
				_ = tr.Find(misses[i%n])
				i++
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	tr := New()
	for _, w := range random.Words(newPRNG(3), 10_000) {
		_ = tr.Insert(w)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = tr.Clone()
	}
}

func BenchmarkAll(b *testing.B) {
	tr := New()
	for _, w := range random.Words(newPRNG(4), 10_000) {
		_ = tr.Insert(w)
	}

	for b.Loop() {
		for range tr.All() {
		}
	}
}

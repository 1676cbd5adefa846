// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitset implements a fixed size bitset for the 256 possible
// transition labels (bytes) of a trie state.
//
// The double-array engine collects the outgoing labels of a state into
// a BitSet256 before it searches a new base, the set is always sorted
// and free of duplicates by construction.
package bitset

import (
	"iter"
	"math/bits"
)

//   i>>6 is the word index, i&63 the bit index in that word.
//
// not factored out as functions to keep most of the methods
// inlineable with minimal costs.

// BitSet256 represents a fixed size bitset from [0..255]
type BitSet256 [4]uint64

// Set sets the label.
func (b *BitSet256) Set(label byte) {
	b[label>>6&3] |= 1 << (label & 63)
}

// Test if the label is set.
func (b *BitSet256) Test(label byte) bool {
	return b[label>>6&3]&(1<<(label&63)) != 0
}

// FirstSet returns the smallest label along with an ok code.
func (b *BitSet256) FirstSet() (first byte, ok bool) {
	for wIdx, word := range b {
		if word != 0 {
			return byte(wIdx<<6 + bits.TrailingZeros64(word)), true
		}
	}
	return
}

// LastSet returns the greatest label along with an ok code.
func (b *BitSet256) LastSet() (last byte, ok bool) {
	for wIdx := 3; wIdx >= 0; wIdx-- {
		if word := b[wIdx]; word != 0 {
			return byte(wIdx<<6 + bits.Len64(word) - 1), true
		}
	}
	return
}

// All returns an iterator over all labels in ascending order.
func (b *BitSet256) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for wIdx, word := range b {
			for ; word != 0; word &= word - 1 {
				if !yield(byte(wIdx<<6 + bits.TrailingZeros64(word))) {
					return
				}
			}
		}
	}
}

// Size is the number of set labels (popcount).
func (b *BitSet256) Size() (cnt int) {
	cnt += bits.OnesCount64(b[0])
	cnt += bits.OnesCount64(b[1])
	cnt += bits.OnesCount64(b[2])
	cnt += bits.OnesCount64(b[3])
	return
}

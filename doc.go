// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package datrie provides a compact, mutable set of byte strings
// stored as a double-array trie.
//
// Two parallel integer arrays, base and check, encode the transitions
// of the trie without per-node pointers:
//
//	child := base[s] + c    // c is the next byte of the key
//	check[child] == s       // else there is no transition
//
// Chains of single-child states are not materialized, the rest of a key
// that shares no structure with any other key is stored once as a tail
// string at its leaf. When a new key diverges inside a tail, the common
// part is unfolded into explicit states.
//
// Unused cells form an ascending, circular, doubly-linked free list that
// is threaded through the very same arrays, with negated indices as
// links. Finding a base for a set of children is a forward scan over
// this list. On a collision the state with fewer children is relocated
// to a new base and every grandchild gets its owner rewritten.
//
// Keys are arbitrary byte sequences, every byte value is allowed.
// Keys can't be deleted and the trie has no serialized format.
//
// A Trie is not safe for concurrent mutation. Readers can share a
// snapshot made with [Trie.Clone] while a single writer inserts into
// the next version, see the concurrent example.
package datrie

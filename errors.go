// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "errors"

var (
	// ErrInvariant is returned when the free-slot ledger cannot deliver a
	// candidate or the structure is found corrupted. The trie must not be
	// used after this error.
	ErrInvariant = errors.New("datrie: invariant violation")

	// ErrOutOfMemory is returned when the arrays would have to grow beyond
	// the configured maximum capacity. The trie must not be used after
	// this error.
	ErrOutOfMemory = errors.New("datrie: out of memory")
)

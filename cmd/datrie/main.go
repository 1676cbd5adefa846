// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command datrie loads word lists into a double-array trie, checks the
// structure, answers lookups and measures insert and find throughput.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow reference set of byte
// strings, the golden model the double-array trie is tested against.
package golden

import (
	"maps"
	"slices"
	"strings"
)

// Set is a map backed set of keys.
type Set map[string]struct{}

// Insert adds key, it reports whether key was new.
func (s Set) Insert(key string) bool {
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// Find reports whether key is in the set.
func (s Set) Find(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s Set) Len() int {
	return len(s)
}

// AllSorted returns all keys in ascending byte order.
func (s Set) AllSorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// WithPrefix returns all keys starting with prefix in ascending byte order.
func (s Set) WithPrefix(prefix string) []string {
	var result []string
	for key := range s {
		if strings.HasPrefix(key, prefix) {
			result = append(result, key)
		}
	}
	slices.Sort(result)
	return result
}

// NearMisses returns keys close to key that are not in the set:
// all proper prefixes, one byte extensions and single byte mutations.
func (s Set) NearMisses(key string) []string {
	var cand []string

	for i := range len(key) {
		cand = append(cand, key[:i])
	}

	for _, c := range []byte{0x00, 'a', 'z', 0xff} {
		cand = append(cand, key+string([]byte{c}))
	}

	for i := range len(key) {
		b := []byte(key)
		b[i]++
		cand = append(cand, string(b))
	}

	misses := cand[:0]
	for _, k := range cand {
		if !s.Find(k) {
			misses = append(misses, k)
		}
	}
	return misses
}

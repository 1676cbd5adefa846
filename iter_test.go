// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaissmai/datrie/internal/golden"
	"github.com/gaissmai/datrie/internal/tests/random"
)

func TestAllEmpty(t *testing.T) {
	t.Parallel()

	var tr Trie
	assert.Empty(t, slices.Collect(tr.All()))
	assert.Empty(t, slices.Collect(tr.WithPrefix("")))

	mustInsert(t, &tr, "a")
	tr.Release()
	assert.Empty(t, slices.Collect(tr.All()))
}

func TestAllSorted(t *testing.T) {
	t.Parallel()

	tr := New()
	mustInsert(t, tr, "dog", "", "cat", "car", "ca", "\xff", "\x00", "cats")

	want := []string{"", "\x00", "ca", "car", "cat", "cats", "dog", "\xff"}
	assert.Equal(t, want, slices.Collect(tr.All()))
}

func TestAllRandom(t *testing.T) {
	t.Parallel()

	prng := newPRNG(1)
	tr := New()
	gold := golden.Set{}

	for range workLoadN() {
		key := random.Binary(prng, 5)
		mustInsert(t, tr, key)
		gold.Insert(key)
	}

	assert.Equal(t, gold.AllSorted(), slices.Collect(tr.All()))
}

func TestAllStop(t *testing.T) {
	t.Parallel()

	tr := New()
	mustInsert(t, tr, "a", "ab", "abc", "b", "c")

	var got []string
	for key := range tr.All() {
		got = append(got, key)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "ab"}, got)

	got = nil
	for key := range tr.WithPrefix("ab") {
		got = append(got, key)
		break
	}
	assert.Equal(t, []string{"ab"}, got)
}

func TestWithPrefix(t *testing.T) {
	t.Parallel()

	tr := New()
	mustInsert(t, tr, "", "hello", "help", "helium", "he", "hex", "world")

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"", "he", "helium", "hello", "help", "hex", "world"}},
		{"h", []string{"he", "helium", "hello", "help", "hex"}},
		{"he", []string{"he", "helium", "hello", "help", "hex"}},
		{"hel", []string{"helium", "hello", "help"}},
		{"hell", []string{"hello"}},
		{"hello", []string{"hello"}},
		{"hellos", nil},
		{"helx", nil},
		{"w", []string{"world"}},
		{"wor", []string{"world"}},
		{"worx", nil},
		{"x", nil},
	}

	for _, tt := range tests {
		got := slices.Collect(tr.WithPrefix(tt.prefix))
		assert.Equal(t, tt.want, got, "WithPrefix(%q)", tt.prefix)
	}
}

func TestWithPrefixRandom(t *testing.T) {
	t.Parallel()

	prng := newPRNG(2)
	tr := New()
	gold := golden.Set{}

	for _, key := range random.Words(prng, workLoadN()) {
		mustInsert(t, tr, key)
		gold.Insert(key)
	}

	for range workLoadN() {
		prefix := random.Key(prng, "abcdef", 3)
		assert.Equal(t, gold.WithPrefix(prefix), slices.Collect(tr.WithPrefix(prefix)), "WithPrefix(%q)", prefix)
	}
}

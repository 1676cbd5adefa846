// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/datrie"
	"github.com/gaissmai/datrie/internal/tests/random"
)

type benchOptions struct {
	keys   int
	seed   uint64
	kind   string
	maxLen int
}

func newBenchCmd(a *app) *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Insert and find random keys and report the throughput",
		Args:  cobra.NoArgs,
		RunE: a.logged("bench failed", func(cmd *cobra.Command, _ []string) error {
			keys, err := opts.generate()
			if err != nil {
				return err
			}

			rows, trie, err := a.bench(keys, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := renderTable(w, []string{"op", "count", "total", "ns/op", "Mops/s"}, rows); err != nil {
				return err
			}
			return renderStats(w, trie.Stats())
		}),
	}

	f := cmd.Flags()
	f.IntVarP(&opts.keys, "keys", "k", 100_000, "number of random keys")
	f.Uint64Var(&opts.seed, "seed", 42, "seed of the key generator")
	f.StringVar(&opts.kind, "kind", "words", "words, lower or binary")
	f.IntVar(&opts.maxLen, "max-len", 16, "max. key length for lower and binary keys")

	return cmd
}

// generate the random keys, and the same number of probes for misses.
func (o benchOptions) generate() ([]string, error) {
	if o.keys <= 0 {
		return nil, errors.Errorf("keys %d must be positive", o.keys)
	}

	prng := rand.New(rand.NewPCG(o.seed, o.seed))

	switch o.kind {
	case "words":
		return random.Words(prng, o.keys), nil
	case "lower", "binary":
		keys := make([]string, 0, o.keys)
		for range o.keys {
			if o.kind == "lower" {
				keys = append(keys, random.Key(prng, random.Lower, o.maxLen))
			} else {
				keys = append(keys, random.Binary(prng, o.maxLen))
			}
		}
		return keys, nil
	}

	return nil, errors.Errorf("unknown kind %q, use words, lower or binary", o.kind)
}

// bench measures insert, find of present keys and find of absent keys.
func (a *app) bench(keys []string, o benchOptions) ([][]string, *datrie.Trie, error) {
	trie := datrie.New(a.options()...)

	start := time.Now()
	for i, key := range keys {
		if err := trie.Insert(key); err != nil {
			return nil, nil, errors.Wrapf(err, "insert key #%d", i+1)
		}
	}
	insert := time.Since(start)

	start = time.Now()
	for _, key := range keys {
		if !trie.Find(key) {
			return nil, nil, errors.Errorf("inserted key %q not found", key)
		}
	}
	hit := time.Since(start)

	// reversed keys are mostly absent
	probes := make([]string, len(keys))
	for i, key := range keys {
		b := []byte(key)
		for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
		probes[i] = string(b) + "\x00"
	}

	start = time.Now()
	found := 0
	for _, key := range probes {
		if trie.Find(key) {
			found++
		}
	}
	miss := time.Since(start)

	a.log.Info().
		Str("kind", o.kind).
		Uint64("seed", o.seed).
		Int("keys", trie.Size()).
		Int("probe_hits", found).
		Dur("insert", insert).
		Msg("bench")

	n := len(keys)
	rows := [][]string{
		benchRow("insert", n, insert),
		benchRow("find hit", n, hit),
		benchRow("find miss", n, miss),
	}
	return rows, trie, nil
}

func benchRow(op string, n int, d time.Duration) []string {
	nsPerOp := float64(d.Nanoseconds()) / float64(n)
	mops := 0.0
	if d > 0 {
		mops = float64(n) / d.Seconds() / 1e6
	}
	return []string{
		op,
		fmt.Sprint(n),
		d.Round(time.Microsecond).String(),
		fmt.Sprintf("%.1f", nsPerOp),
		fmt.Sprintf("%.2f", mops),
	}
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/datrie"
)

// max. number of missing keys logged one by one
const maxReported = 10

func newLoadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Insert all keys of the input and print the trie statistics",
		Args:  cobra.NoArgs,
		RunE: a.logged("load failed", func(cmd *cobra.Command, _ []string) error {
			trie, keys, err := a.build(cmd)
			if err != nil {
				return err
			}

			if a.cfg.Verify {
				if err := a.check(trie, keys); err != nil {
					return err
				}
			}

			return renderStats(cmd.OutOrStdout(), trie.Stats())
		}),
	}

	cmd.Flags().BoolVar(&a.flags.Verify, "verify", false, "find every key again and check the structure")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Insert all keys, find them again and check the structural invariants",
		Args:  cobra.NoArgs,
		RunE: a.logged("verify failed", func(cmd *cobra.Command, _ []string) error {
			trie, keys, err := a.build(cmd)
			if err != nil {
				return err
			}

			if err := a.check(trie, keys); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d keys, %d lines\n", trie.Size(), len(keys))
			return err
		}),
	}
}

// check finds every key again and verifies the structure.
func (a *app) check(trie *datrie.Trie, keys []string) error {
	missing := 0
	for i, key := range keys {
		if trie.Find(key) {
			continue
		}
		missing++
		if missing <= maxReported {
			a.log.Error().Int("line", i+1).Str("key", key).Msg("key not found")
		}
	}

	if missing > 0 {
		return errors.Errorf("%d of %d keys not found", missing, len(keys))
	}

	if err := trie.Verify(); err != nil {
		return errors.Wrap(err, "structure")
	}

	a.log.Info().Int("keys", trie.Size()).Msg("verified")
	return nil
}

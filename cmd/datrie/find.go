// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find KEY...",
		Short: "Insert all keys of the input and look up the given keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.logged("find failed", func(cmd *cobra.Command, args []string) error {
			trie, _, err := a.build(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, key := range args {
				if _, err := fmt.Fprintf(w, "%q\t%v\n", key, trie.Find(key)); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

func newDumpCmd(a *app) *cobra.Command {
	var (
		prefix string
		tree   bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Insert all keys of the input and print them in sorted order",
		Args:  cobra.NoArgs,
		RunE: a.logged("dump failed", func(cmd *cobra.Command, _ []string) error {
			trie, _, err := a.build(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if tree {
				return trie.Fprint(w)
			}

			for key := range trie.WithPrefix(prefix) {
				if _, err := fmt.Fprintln(w, key); err != nil {
					return err
				}
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only keys starting with prefix")
	cmd.Flags().BoolVarP(&tree, "tree", "t", false, "print the keys as prefix tree")
	return cmd
}

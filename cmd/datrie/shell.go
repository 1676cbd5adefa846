// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/datrie"
	"github.com/gaissmai/datrie/internal/loader"
)

const shellHelp = `commands:
  insert KEY...   insert keys, quote keys with blanks: insert "a b"
  find KEY...     look up keys
  prefix [P]      list keys starting with P
  tree            print all keys as prefix tree
  load FILE       insert all lines of FILE, .gz is decompressed
  size            number of keys
  stats           memory layout
  verify          check the structural invariants
  clear           drop all keys
  help            this text
  quit            leave the shell
`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell on an empty trie, commands are read from stdin",
		Args:  cobra.NoArgs,
		RunE: a.logged("shell failed", func(cmd *cobra.Command, _ []string) error {
			sh := &shell{app: a, trie: datrie.New(a.options()...), out: cmd.OutOrStdout()}
			return sh.run(cmd.InOrStdin(), isTerminal(cmd.InOrStdin()))
		}),
	}
}

type shell struct {
	app  *app
	trie *datrie.Trie
	out  io.Writer
}

// run executes one command per input line until quit or end of input.
func (sh *shell) run(in io.Reader, prompt bool) error {
	sh.prompt(prompt)

	for line, err := range loader.Lines(in) {
		if err != nil {
			return err
		}

		args, err := shlex.Split(line)
		if err != nil {
			sh.printf("error: %v\n", err)
			sh.prompt(prompt)
			continue
		}

		if len(args) > 0 {
			quit, err := sh.exec(args[0], args[1:])
			if err != nil {
				sh.printf("error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
		sh.prompt(prompt)
	}

	return nil
}

// exec runs a single shell command.
func (sh *shell) exec(name string, args []string) (quit bool, err error) {
	switch strings.ToLower(name) {
	case "quit", "exit":
		return true, nil

	case "help", "?":
		sh.printf("%s", shellHelp)

	case "insert", "add":
		for _, key := range args {
			added, err := sh.trie.Add(key)
			if err != nil {
				return false, sh.reset(err)
			}
			sh.printf("%q\t%v\n", key, added)
		}

	case "find":
		for _, key := range args {
			sh.printf("%q\t%v\n", key, sh.trie.Find(key))
		}

	case "prefix":
		if len(args) > 1 {
			return false, errors.New("usage: prefix [P]")
		}
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		for key := range sh.trie.WithPrefix(prefix) {
			sh.printf("%q\n", key)
		}

	case "tree":
		return false, sh.trie.Fprint(sh.out)

	case "load":
		if len(args) != 1 {
			return false, errors.New("usage: load FILE")
		}
		return false, sh.load(args[0])

	case "size":
		sh.printf("%d\n", sh.trie.Size())

	case "stats":
		return false, renderStats(sh.out, sh.trie.Stats())

	case "verify":
		if err := sh.trie.Verify(); err != nil {
			return false, sh.reset(err)
		}
		sh.printf("ok\n")

	case "clear":
		sh.trie.Release()

	default:
		return false, errors.Errorf("unknown command %q, try help", name)
	}

	return false, nil
}

// load inserts all lines of path.
func (sh *shell) load(path string) error {
	rc, err := loader.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	n := 0
	for line, err := range loader.Lines(rc) {
		if err != nil {
			return err
		}
		if err := sh.trie.Insert(line); err != nil {
			return sh.reset(err)
		}
		n++
	}

	sh.app.log.Info().Str("file", path).Int("lines", n).Int("keys", sh.trie.Size()).Msg("loaded")
	sh.printf("%d lines, %d keys\n", n, sh.trie.Size())
	return nil
}

// reset replaces the trie after an error, it must not be used further.
func (sh *shell) reset(err error) error {
	sh.app.log.Error().Err(err).Msg("trie dropped")
	sh.trie = datrie.New(sh.app.options()...)
	return errors.Wrap(err, "trie dropped, starting empty")
}

func (sh *shell) prompt(on bool) {
	if on {
		sh.printf("datrie> ")
	}
}

func (sh *shell) printf(format string, a ...any) {
	fmt.Fprintf(sh.out, format, a...)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

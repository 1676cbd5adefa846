// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gaissmai/datrie"
	"github.com/gaissmai/datrie/internal/config"
	"github.com/gaissmai/datrie/internal/loader"
	"github.com/gaissmai/datrie/internal/logging"
)

// app is the state shared by all subcommands.
type app struct {
	cfgFile string
	cfg     config.Config
	flags   config.Config // flag values, applied when changed

	log    zerolog.Logger
	closer io.Closer
}

// newRootCmd wires the subcommands, a fresh tree per call for the tests.
func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop(), closer: nopCloser{}}

	root := &cobra.Command{
		Use:   "datrie",
		Short: "Double-array trie loader, checker and benchmark",

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.closer.Close()
		},
	}

	def := config.Default()
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "JSON config file (env DATRIE_CONFIG)")
	pf.StringVarP(&a.flags.Input, "input", "i", def.Input, "key source, one key per line, .gz is decompressed, - is stdin")
	pf.IntVarP(&a.flags.Limit, "limit", "n", def.Limit, "read at most n keys, 0 means all")
	pf.IntVar(&a.flags.InitialCapacity, "initial-capacity", def.InitialCapacity, "initial cells of the trie, 0 means default")
	pf.IntVar(&a.flags.MaxCapacity, "max-capacity", def.MaxCapacity, "maximum cells of the trie, 0 means default")
	pf.StringVar(&a.flags.LogLevel, "log-level", def.LogLevel, "trace, debug, info, warn or error")
	pf.StringVar(&a.flags.LogFormat, "log-format", def.LogFormat, "auto, console or json")
	pf.StringVar(&a.flags.LogFile, "log-file", def.LogFile, "additional rotating JSON log file")

	root.AddCommand(
		newLoadCmd(a),
		newFindCmd(a),
		newVerifyCmd(a),
		newDumpCmd(a),
		newShellCmd(a),
		newBenchCmd(a),
	)

	return root
}

// setup layers defaults, config file, environment and changed flags,
// validates the result and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()

	if a.cfgFile == "" {
		a.cfgFile = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if err := a.cfg.ApplyEnv(config.EnvPrefix); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		a.cfg.Input = a.flags.Input
	}
	if flags.Changed("limit") {
		a.cfg.Limit = a.flags.Limit
	}
	if flags.Changed("initial-capacity") {
		a.cfg.InitialCapacity = a.flags.InitialCapacity
	}
	if flags.Changed("max-capacity") {
		a.cfg.MaxCapacity = a.flags.MaxCapacity
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.flags.LogLevel
	}
	if flags.Changed("log-format") {
		a.cfg.LogFormat = a.flags.LogFormat
	}
	if flags.Changed("log-file") {
		a.cfg.LogFile = a.flags.LogFile
	}
	if flags.Lookup("verify") != nil && flags.Changed("verify") {
		a.cfg.Verify = a.flags.Verify
	}

	if err := a.cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}

	log, closer, err := logging.New(cmd.ErrOrStderr(), a.cfg)
	if err != nil {
		return err
	}
	a.log, a.closer = log, closer

	a.log.Debug().Str("cmd", cmd.Name()).Interface("config", a.cfg).Msg("setup")
	return nil
}

// options for new tries from the config, zero values keep the defaults.
func (a *app) options() []datrie.Option {
	var opts []datrie.Option
	if a.cfg.InitialCapacity > 0 {
		opts = append(opts, datrie.WithInitialCapacity(a.cfg.InitialCapacity))
	}
	if a.cfg.MaxCapacity > 0 {
		opts = append(opts, datrie.WithMaxCapacity(a.cfg.MaxCapacity))
	}
	return opts
}

// logged wraps fn, a returned error is logged before cobra prints it.
func (a *app) logged(msg string, fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			a.log.Error().Err(err).Str("cmd", cmd.Name()).Msg(msg)
			return err
		}
		return nil
	}
}

// build reads the configured input into a new trie and returns the keys
// in input order, duplicates included.
func (a *app) build(cmd *cobra.Command) (*datrie.Trie, []string, error) {
	rc, err := a.open(cmd)
	if err != nil {
		return nil, nil, err
	}
	defer rc.Close()

	trie := datrie.New(a.options()...)

	start := time.Now()
	var keys []string

	for line, err := range loader.Lines(rc) {
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s:%d", a.cfg.Input, len(keys)+1)
		}
		if a.cfg.Limit > 0 && len(keys) >= a.cfg.Limit {
			a.log.Warn().Int("limit", a.cfg.Limit).Msg("input truncated")
			break
		}

		if err := trie.Insert(line); err != nil {
			return nil, nil, errors.Wrapf(err, "insert key #%d %q", len(keys)+1, line)
		}
		keys = append(keys, line)

		if len(keys)%(1<<16) == 0 {
			a.log.Debug().Int("keys", len(keys)).Msg("loading")
		}
	}

	a.log.Info().
		Str("input", a.cfg.Input).
		Int("lines", len(keys)).
		Int("keys", trie.Size()).
		Dur("took", time.Since(start)).
		Msg("loaded")

	return trie, keys, nil
}

// open the input, stdin is taken from the command for the tests.
func (a *app) open(cmd *cobra.Command) (io.ReadCloser, error) {
	if a.cfg.Input == loader.Stdin {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return loader.Open(a.cfg.Input)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

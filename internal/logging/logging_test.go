// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/datrie/internal/config"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.LogFormat = config.FormatJSON

	buf := new(bytes.Buffer)
	log, closer, err := New(buf, cfg)
	require.NoError(t, err)
	defer closer.Close()

	log.Debug().Msg("hidden")
	log.Info().Int("keys", 3).Msg("loaded")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug must be filtered at info level")

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "loaded", rec["message"])
	assert.EqualValues(t, 3, rec["keys"])
	assert.Contains(t, rec, "time")
}

func TestNewAutoIsJSONForBuffers(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	log, _, err := New(buf, config.Default())
	require.NoError(t, err)

	log.Warn().Msg("plain")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "got %q", buf.String())
}

func TestNewConsole(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.LogFormat = config.FormatConsole
	cfg.LogLevel = "debug"

	buf := new(bytes.Buffer)
	log, _, err := New(buf, cfg)
	require.NoError(t, err)

	log.Debug().Str("file", "words.txt").Msg("hello world")

	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "DEB")
	assert.Contains(t, out, "words.txt")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewLogFile(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.LogFormat = config.FormatConsole
	cfg.LogFile = filepath.Join(t.TempDir(), "datrie.log")

	buf := new(bytes.Buffer)
	log, closer, err := New(buf, cfg)
	require.NoError(t, err)

	log.Error().Str("key", "abc").Msg("insert failed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec), "file is json: %q", data)
	assert.Equal(t, "error", rec["level"])
	assert.Equal(t, "abc", rec["key"])

	assert.Contains(t, buf.String(), "insert failed", "console gets the line too")
}

func TestNewBadLevel(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.LogLevel = "chatty"

	_, _, err := New(new(bytes.Buffer), cfg)
	assert.Error(t, err)
}

func TestLevelStyle(t *testing.T) {
	t.Parallel()

	for _, lvl := range []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "???"} {
		got := LevelStyle(lvl).Render(abbrev(lvl))
		assert.Contains(t, got, abbrev(lvl))
	}
	assert.Equal(t, "inf", abbrev("info"))
	assert.Equal(t, "", abbrev(""))
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package logging builds the zerolog logger of the command line tool.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gaissmai/datrie/internal/config"
)

// level colors
const (
	colorDebug = "#3ddbd9"
	colorInfo  = "#4589ff"
	colorWarn  = "#ff832b"
	colorError = "#da1e28"
	colorFatal = "#ff0000"
	colorGray  = "#8d8d8d"
	colorKey   = "#78a9ff"
)

var (
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(colorKey))
	errKeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorError))
	equalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
)

// New returns a logger writing to out, and to the rotating log file
// if cfg.LogFile is set. The returned closer closes the log file.
//
// With the auto format, out gets styled console lines when it is a
// terminal and JSON lines otherwise. The log file is always JSON.
func New(out io.Writer, cfg config.Config) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.LogLevel != "" {
		var err error
		if level, err = zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
			return zerolog.Nop(), nil, errors.Wrap(err, "log level")
		}
	}

	var w io.Writer = out
	if useConsole(out, cfg.LogFormat) {
		w = ConsoleWriter(out)
	}

	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAgeDays,
			Compress:   true,
		}
		w = zerolog.MultiLevelWriter(w, file)
		closer = file
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return logger, closer, nil
}

// useConsole decides the output format for out.
func useConsole(out io.Writer, format string) bool {
	switch format {
	case config.FormatConsole:
		return true
	case config.FormatJSON:
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConsoleWriter builds a zerolog.ConsoleWriter with lipgloss styles.
func ConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			return LevelStyle(lvl).Render(strings.ToUpper(abbrev(lvl)))
		},

		FormatTimestamp: func(i any) string {
			return timestampStyle.Render(fmt.Sprint(i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style := keyStyle
			if key == zerolog.ErrorFieldName {
				style = errKeyStyle
			}
			return style.Render(key) + equalStyle.Render("=")
		},
	}
}

// LevelStyle returns the badge style of a log level.
func LevelStyle(level string) lipgloss.Style {
	var color string
	switch level {
	case "debug", "trace":
		color = colorDebug
	case "info":
		color = colorInfo
	case "warn":
		color = colorWarn
	case "error":
		color = colorError
	case "fatal", "panic":
		color = colorFatal
	default:
		color = colorGray
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

func abbrev(level string) string {
	if len(level) > 3 {
		return level[:3]
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gaissmai/datrie"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d8d8d"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#78a9ff")).Padding(0, 1)
	nameStyle   = lipgloss.NewStyle().Padding(0, 1)
	valueStyle  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// renderTable writes a bordered table, the first column is left aligned,
// all others right aligned.
func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return valueStyle
			}
		}).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// renderStats writes the memory layout of a trie.
func renderStats(w io.Writer, s datrie.Stats) error {
	itoa := strconv.Itoa

	rows := [][]string{
		{"keys", itoa(s.Keys)},
		{"states", itoa(s.States)},
		{"leaves", itoa(s.Leaves)},
		{"endpoints", itoa(s.Endpoints)},
		{"tail bytes", itoa(s.TailBytes)},
		{"free cells", itoa(s.Free)},
		{"last link", itoa(s.LastLink)},
		{"capacity", itoa(s.Capacity)},
		{"density", fmt.Sprintf("%.3f", s.Density())},
		{"relocations", itoa(s.Relocations)},
	}

	return renderTable(w, []string{"stat", "value"}, rows)
}

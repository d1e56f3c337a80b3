package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// Output helpers for the two commands that render structured state: `list`
// and `daemon status`. Only two table shapes and a handful of status states
// are ever printed, so everything here is specific rather than generic.

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// renderSelectionTable renders Set/Path rows the way `list` shows them on a
// terminal. Piped output skips this and prints tab-separated lines instead.
func renderSelectionTable(rows [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Set", "Path"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}

// renderCountTable renders the per-set path counts for `daemon status`.
func renderCountTable(copied, cut int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Set", "Paths"})
	tw.AppendRow(table.Row{"copied", copied})
	tw.AppendRow(table.Row{"cut", cut})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	return tw.Render()
}

func sectionHeader(title string, colorize bool) string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	return line
}

// statusLine formats one "Label: [STATE] detail" line. State drives the
// color: OK green, WARN yellow, DOWN red, anything else uncolored.
func statusLine(label, state, detail string, colorize bool) string {
	line := fmt.Sprintf("  %-8s [%s]", label+":", state)
	if detail != "" {
		line += " " + detail
	}
	if colorize {
		if color := stateColor(state); color != "" {
			line = color + line + ansiReset
		}
	}
	return line
}

func stateColor(state string) string {
	switch state {
	case "OK":
		return ansiGreen
	case "WARN":
		return ansiYellow
	case "DOWN":
		return ansiRed
	default:
		return ""
	}
}

// isTerminal reports whether writer is an interactive terminal; tables and
// colors are reserved for that case.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Package logging builds the structured logger shared by the CLI and the engine.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Options controls logger construction.
type Options struct {
	// Level is a level name understood by log.ParseLevel ("debug", "info", ...).
	// Empty means "info".
	Level string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger for the given options.
// Text output is used on a terminal, logfmt otherwise.
func New(opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	formatter := log.LogfmtFormatter
	if isTerminal(out) {
		formatter = log.TextFormatter
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: formatter == log.TextFormatter,
		Prefix:          "logi2048",
		Level:           level,
		Formatter:       formatter,
	})
	logger.SetStyles(styles())

	return logger, nil
}

// styles widens the level badges so aligned columns survive debug output.
func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))
	s.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))
	s.Keys["dir"] = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

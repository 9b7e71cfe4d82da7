// Package logging builds the slog logger used across tierbank.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cleared-dev/tierbank/internal/config"
)

// New returns a slog.Logger backed by a charmbracelet handler writing to w.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	formatter := log.TextFormatter
	switch strings.ToLower(cfg.Format) {
	case "", "text":
	case "json":
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tierbank",
		Formatter:       formatter,
	})
	handler.SetStyles(styles())

	return slog.New(handler), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	level := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			MaxWidth(5).
			Foreground(lipgloss.Color(color))
	}
	s.Levels[log.DebugLevel] = level("DEBUG", "63")
	s.Levels[log.InfoLevel] = level("INFO", "86")
	s.Levels[log.WarnLevel] = level("WARN", "192")
	s.Levels[log.ErrorLevel] = level("ERROR", "204")
	s.Keys["account"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	s.Values["account"] = lipgloss.NewStyle().Bold(true)
	return s
}

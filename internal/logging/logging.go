// Package logging builds the slog.Logger used for diagnostics. Diagnostics
// go to stderr so that stdout carries only command results.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// New creates a logger writing to w. level is any name slog understands
// ("debug", "info", "warn", "error", optionally with an offset such as
// "warn+2"); format is "text" or "json".
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("log format %q: want text or json", format)
}

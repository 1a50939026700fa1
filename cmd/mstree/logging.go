// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds the process logger and installs it as the slog default,
// so library-independent helpers can use slog's top-level functions.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var h slog.Handler
	switch format {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, nil
}

// Package logging builds the slog.Logger shared by all supplywatch
// components. Every diagnostic record is written to both a persistent
// log file and the console, so an operator can follow a run live and
// audit it afterwards. Components receive the logger at construction
// rather than reading process-wide state.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/seenimoa/supplywatch/internal/config"
)

// New creates a logger per the given config. The returned closer owns
// the log file handle; callers close it when the process exits.
func New(cfg config.LoggingConfig) (*slog.Logger, io.Closer, error) {
	var sinks []io.Writer
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
		}
		sinks = append(sinks, f)
		closer = f
	}
	sinks = append(sinks, os.Stderr)

	w := io.MultiWriter(sinks...)
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), closer, nil
}

// Discard returns a logger that drops every record. Used in tests so
// components stay quiet without touching shared process state.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a config string to a slog level. Unknown values
// fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

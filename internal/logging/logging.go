// Package logging builds the slog.Logger shared by the command line and the
// engine.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// Levels and formats accepted by New.
var (
	Levels  = []string{"debug", "info", "warn", "error"}
	Formats = []string{"text", "json"}
)

// ErrUnknownLevel and ErrUnknownFormat reject settings New does not know.
var (
	ErrUnknownLevel  = errors.New("logging: unknown level")
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLevel, "%q", s)
	}
}

// New returns a logger writing to w at the given level, as text or JSON. It
// does not touch slog's default logger, so callers can hold several.
func New(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	return slog.New(h), nil
}

// Discard returns a logger that drops everything. Its level sits above
// error, so no record is even formatted.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a logger writing to w at the given level. An unparseable level
// falls back to info rather than failing startup.
func New(w io.Writer, level string, pretty bool) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(parsed).With().Timestamp().Logger()
}

// Default logs to stderr at info level, pretty when stderr is a terminal.
func Default() zerolog.Logger {
	pretty := false
	if info, err := os.Stderr.Stat(); err == nil {
		pretty = info.Mode()&os.ModeCharDevice != 0
	}
	return New(os.Stderr, "info", pretty)
}

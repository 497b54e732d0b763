// Package logger provides a configured zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger for the service writing to stdout. format is "json"
// or "console"; an unparsable level falls back to info.
func New(serviceName, level, format string) zerolog.Logger {
	return NewWithWriter(os.Stdout, serviceName, level, format)
}

func NewWithWriter(w io.Writer, serviceName, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Package logging builds the zerolog loggers shared by the host, the ECS
// systems and cmd/sim.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a case-insensitive level name to a zerolog level.
// Unknown names fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "OFF", "DISABLED":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New returns a timestamped logger writing to out. pretty selects the
// human-readable console format; otherwise lines are JSON.
func New(out io.Writer, level string, pretty bool) zerolog.Logger {
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Tee writes console output to out and plain JSON to file.
func Tee(out, file io.Writer, level string) zerolog.Logger {
	mlw := zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339},
		file,
	)
	return zerolog.New(mlw).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// For tags a logger with the subsystem emitting through it.
func For(l zerolog.Logger, subsystem string) zerolog.Logger {
	return l.With().Str("subsystem", subsystem).Logger()
}

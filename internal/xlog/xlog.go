// Package xlog is the structured-logging helper shared by cmd/tripolys and
// the persist collaborator. The CSP core (digraph through poly)
// never imports this package: it is a pure library and must not touch I/O
// or logging, so its algorithm packages never do either.
//
// What
//
//   - New builds a zerolog.Logger writing to either JSON (the default,
//     machine-friendly) or a console writer (human-friendly, selected by
//     --log-format console).
//   - Verbosity maps -v/-vv straight onto zerolog's level: 0 flags ->
//     info, one -> debug, two or more -> trace.
//
// Why
//
//   - zerolog is the chosen logger for a CLI-fronted solver rather than
//     bare fmt.Println; one shared constructor keeps every collaborator's
//     log line shaped the same way.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Level mirrors the CLI's -v/-vv verbosity flags onto a log level.
type Level int

const (
	// LevelInfo is the default: only operational milestones are logged.
	LevelInfo Level = iota
	// LevelDebug is selected by a single -v.
	LevelDebug
	// LevelTrace is selected by -vv or higher.
	LevelTrace
)

// New builds a logger writing to w (os.Stderr in cmd/tripolys). format is
// "json" (default) or "console"; any other value falls back to "json".
func New(w io.Writer, format string, level Level) zerolog.Logger {
	var writer io.Writer = w
	if format == "console" {
		writer = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(writer).With().Timestamp().Logger()

	switch level {
	case LevelDebug:
		zl = zl.Level(zerolog.DebugLevel)
	case LevelTrace:
		zl = zl.Level(zerolog.TraceLevel)
	default:
		zl = zl.Level(zerolog.InfoLevel)
	}

	return zl
}

// LevelFromVerbosity converts a -v repeat count into a Level.
func LevelFromVerbosity(count int) Level {
	switch {
	case count >= 2:
		return LevelTrace
	case count == 1:
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Default is a JSON logger on os.Stderr at info level, used by
// collaborators invoked outside the CLI (e.g. tests exercising persist
// directly) that have no --log-format/-v context of their own.
var Default = New(os.Stderr, "json", LevelInfo)

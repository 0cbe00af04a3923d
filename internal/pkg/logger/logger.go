// Package logger wraps zerolog behind a small package-level API so the
// rest of the application never touches the zerolog globals directly.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FormatText selects human-readable console output; anything else means JSON.
const FormatText = "text"

var root zerolog.Logger

func init() {
	Configure("info", FormatText)
}

// Configure rebuilds the shared logger. Unknown levels fall back to info.
func Configure(level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	var out io.Writer = os.Stdout
	if format == FormatText {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	root = zerolog.New(out).With().Timestamp().Logger()
	log.Logger = root
}

// Root returns the configured logger for callers that want to carry one
func Root() zerolog.Logger {
	return root
}

func Debug() *zerolog.Event { return root.Debug() }

func Info() *zerolog.Event { return root.Info() }

func Warn() *zerolog.Event { return root.Warn() }

func Error() *zerolog.Event { return root.Error() }

// Fatal logs and then exits the process
func Fatal() *zerolog.Event { return root.Fatal() }

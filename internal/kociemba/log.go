package kociemba

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerOnce sync.Once
	logger     zerolog.Logger
)

// log returns the package's shared logger, a component-scoped
// sub-logger of a console-pretty zerolog writer. Table construction and
// loading are the only things in this package worth emitting structured
// log lines for; the search hot path stays silent.
func log() *zerolog.Logger {
	loggerOnce.Do(func() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().Timestamp().Str("component", "kociemba").Logger()
	})
	return &logger
}

// SetLogger overrides the package logger, for embedding callers that
// want table-build progress folded into their own structured output
// instead of kociemba's default console writer.
func SetLogger(l zerolog.Logger) {
	loggerOnce.Do(func() {})
	logger = l.With().Str("component", "kociemba").Logger()
}

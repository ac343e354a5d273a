// Package logger builds the zerolog logger used by the command line.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // human readable console output
}

// New creates a structured logger writing to stderr, stdout being reserved
// for the command's own output.
func New(cfg Config) zerolog.Logger {
	return NewWriter(os.Stderr, cfg)
}

// NewWriter is New with an explicit output.
func NewWriter(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

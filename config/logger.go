package config

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. JSON is the default output; "console"
// switches to the human readable writer used during development.
func NewLogger(cfg *Config, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if strings.EqualFold(cfg.LogFormat, "console") {
		out = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

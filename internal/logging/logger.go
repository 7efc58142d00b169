package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON slog logger on stdout configured at the provided level and
// tagged with the service name. If the level string is invalid it defaults to info.
func New(level, service string) *slog.Logger {
	return newWithWriter(os.Stdout, level, service)
}

func newWithWriter(w io.Writer, level, service string) *slog.Logger {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl.Set(slog.LevelInfo)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	if service != "" {
		logger = logger.With(slog.String("service", service))
	}
	return logger
}

// Discard returns a logger that drops all output. Useful for tests.
func Discard() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})
	return slog.New(handler)
}

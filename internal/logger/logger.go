package logger

import (
	"log/slog"
	"os"
)

// New creates a preconfigured slog.Logger. LOG_LEVEL=debug enables debug
// output, anything else keeps the info default.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Package logger configures the process-wide slog logger for the cmds.
// Library packages do not log.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var once sync.Once

// Init sets the default logger from LOG_LEVEL (debug/info/warn/error) and
// LOG_FORMAT (text/json). Safe to call more than once.
func Init() *slog.Logger {
	once.Do(func() {
		level := slog.LevelInfo
		switch os.Getenv("LOG_LEVEL") {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}

		opts := &slog.HandlerOptions{Level: level}
		var handler slog.Handler
		if os.Getenv("LOG_FORMAT") == "json" {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
		slog.SetDefault(slog.New(handler))
	})
	return slog.Default()
}

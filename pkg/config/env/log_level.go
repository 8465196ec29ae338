package env

import (
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel maps debug|info|warn|error to a slog level, defaulting to info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogging applies LOG_LEVEL to the default slog logger.
func SetupLogging() slog.Level {
	level := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	slog.SetLogLoggerLevel(level)
	return level
}

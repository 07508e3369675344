package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// logLevelEnvVar selects the default log level when no explicit level
// is given.
const logLevelEnvVar = "LOG_LEVEL"

// ParseLevel maps a textual log level to a slog.Level. Matching is
// case-insensitive; unknown or empty input maps to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewStructuredLogger creates a JSON logger writing to stderr with
// constant module and version attributes. Debug level adds source
// locations, with file paths trimmed to their base names.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if src, ok := a.Value.Any().(*slog.Source); ok {
					src.File = filepath.Base(src.File)
				}
			}
			return a
		},
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefaultStructuredLogger installs the structured logger as the
// slog default, with the level taken from the LOG_LEVEL environment
// variable.
func SetDefaultStructuredLogger(module, version string) {
	SetDefaultStructuredLoggerWithLevel(module, version, os.Getenv(logLevelEnvVar))
}

// SetDefaultStructuredLoggerWithLevel installs the structured logger
// as the slog default with an explicit level.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger bridges to consumers of the standard library log
// package, such as http.Server.ErrorLog. Records pass through a JSON
// handler at the given level.
func NewLogLogger(level slog.Level, addSource bool) *log.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})
	return slog.NewLogLogger(handler, level)
}

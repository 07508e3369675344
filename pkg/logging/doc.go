// Package logging provides structured logging utilities for toolver components.
//
// # Overview
//
// This package wraps the standard library slog package with shared
// defaults so the CLI and the API daemon log the same way. It supports
// environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("toolver", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("comparing versions", "left", left, "right", right)
//	    slog.Debug("parsed value", "version", v)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("toolverd", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("toolver", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug toolver parse 2.11.7-RC3
//	LOG_LEVEL=error toolverd
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "toolverd",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "main.serve",
//	        "file": "server.go",
//	        "line": 45
//	    },
//	    "msg": "parsed value",
//	    "module": "toolverd",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/api - API server logging
//   - pkg/cli - CLI command logging
//   - pkg/server - HTTP middleware logging
//
// Packages that log through the slog default logger (such as
// pkg/serializer) pick up the same handler once a main calls
// SetDefaultStructuredLogger, so all components share a consistent
// format and configuration.
package logging

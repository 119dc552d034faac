package logger

import (
	"sync"

	"github.com/philipp01105/nlogd/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// Default returns the default logger, or nil when none is installed
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault installs the logger used by the package-level functions.
// There is no default until SetDefault is called; until then, and after
// SetDefault(nil), the package-level functions do nothing.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs message at level using the default logger
func Log(level core.Level, message any, ctx core.Context) {
	Default().Log(level, message, ctx)
}

// Emergency logs an emergency message using the default logger
func Emergency(message any, ctx ...core.Context) {
	Default().Emergency(message, ctx...)
}

// Alert logs an alert message using the default logger
func Alert(message any, ctx ...core.Context) {
	Default().Alert(message, ctx...)
}

// Critical logs a critical message using the default logger
func Critical(message any, ctx ...core.Context) {
	Default().Critical(message, ctx...)
}

// Error logs an error message using the default logger
func Error(message any, ctx ...core.Context) {
	Default().Error(message, ctx...)
}

// Warning logs a warning message using the default logger
func Warning(message any, ctx ...core.Context) {
	Default().Warning(message, ctx...)
}

// Notice logs a notice message using the default logger
func Notice(message any, ctx ...core.Context) {
	Default().Notice(message, ctx...)
}

// Info logs an info message using the default logger
func Info(message any, ctx ...core.Context) {
	Default().Info(message, ctx...)
}

// Debug logs a debug message using the default logger
func Debug(message any, ctx ...core.Context) {
	Default().Debug(message, ctx...)
}

// With creates a new logger with additional fields
func With(fields ...core.Field) *Logger {
	return Default().With(fields...)
}

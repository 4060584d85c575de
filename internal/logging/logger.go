// Package logging configures the charmbracelet/log loggers tagcheck uses for
// operational messages. Diagnostics are never logged; reporters print them.
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Process-wide default logger.
var defaultLogger atomic.Pointer[log.Logger]

// New creates a stderr logger. Level is one of debug, info, warn or error;
// anything else means info.
func New(level string) *log.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{})
	logger.SetLevel(parseLevel(level))
	return logger
}

// NewInteractive creates a logger for messages addressed to the user of an
// interactive command such as init.
func NewInteractive() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Prefix: "tagcheck", Level: log.InfoLevel})
}

func parseLevel(level string) log.Level {
	if strings.EqualFold(level, "warning") {
		return log.WarnLevel
	}
	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil || parsed > log.ErrorLevel {
		return log.InfoLevel
	}
	return parsed
}

// Default returns the process-wide logger, creating it on first use.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the process-wide logger.
func SetLevel(level string) {
	Default().SetLevel(parseLevel(level))
}

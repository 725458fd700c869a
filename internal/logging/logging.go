// Copyright (c) 2025 Tunestat
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the zerolog-based logger shared by all tunestat
// packages. The CLI writes human-oriented output through pterm; this logger
// carries the diagnostic channel (open/execute/close tracing, config
// resolution) and stays on stderr so piped query output is never polluted.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// log is the shared logger instance.
	log zerolog.Logger

	// mu protects reconfiguration.
	mu sync.RWMutex
)

func init() {
	// Default to warn so plain CLI runs stay quiet until Init is called.
	initLogger("warn", os.Stderr)
}

// Init configures the shared logger. Level is one of trace, debug, info,
// warn, error; anything else falls back to info. Safe to call more than
// once; later calls reconfigure.
func Init(level string, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(level, out)
}

func initLogger(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	zerolog.SetGlobalLevel(parseLevel(level))
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug starts a debug-level log event.
func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug()
}

// Warn starts a warn-level log event.
func Warn() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn()
}

// Error starts an error-level log event.
func Error() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Error()
}

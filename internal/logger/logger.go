// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// totpclip.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer.
//
// Every logger built by this package carries a "run_id" field that is
// unique per process, so lines from overlapping runs that share a log
// file can be told apart.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	runIDOnce sync.Once
	runID     string
)

// RunID returns the identifier attached to every logger of this process.
func RunID() string {
	runIDOnce.Do(func() {
		runID = uuid.NewString()
	})
	return runID
}

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	closer io.Closer
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newJSON(role string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().
		Str("role", role).
		Str("run_id", RunID()).
		Timestamp().
		Caller().
		Logger()
}

// NewLogger constructs a *Logger for the given role label that writes
// JSON to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a "run_id" field (see [RunID]);
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format).
func NewLogger(role string) *Logger {
	configureGlobals()
	return &Logger{Logger: newJSON(role, os.Stdout)}
}

// NewClientLogger writes JSON to the file at path, appending, so the
// terminal UI owns the screen. The parent directory is created if needed.
// An empty path or a file that cannot be opened falls back to os.Stderr.
//
// Call Close when done to release the file.
func NewClientLogger(role, path string) *Logger {
	configureGlobals()

	var out io.Writer = os.Stderr
	var closer io.Closer

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
			if err == nil {
				out, closer = logFile, logFile
			}
		}
	}

	return &Logger{Logger: newJSON(role, out), closer: closer}
}

// NewConsoleLogger writes human-readable lines to w. It backs the
// headless display, which prints events rather than diagnostics, so no
// caller field is added.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{Logger: zl}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// Named returns a child logger tagged with a "component" field.
func (l *Logger) Named(component string) *Logger {
	return &Logger{Logger: l.With().Str("component", component).Logger()}
}

// WithContext returns a copy of ctx carrying l, for retrieval with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// Close releases the log file opened by [NewClientLogger]. It is a no-op
// for other loggers.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the recipe-share server and client.
//
// The server writes JSON lines to stdout; every request gets a child logger
// carrying its trace id, and authenticated requests additionally carry the
// caller's user id and role. Code below the HTTP layer reads that logger
// back with FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so Info, Error and the rest are called on it
// directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON logger of a server process. Entries carry
// "role", a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	return newJSONLogger(os.Stdout, role)
}

func newJSONLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewConsoleLogger returns a plain-text logger for the command-line client.
// Debug entries are dropped.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}

	return &Logger{zerolog.New(console).Level(zerolog.InfoLevel).With().
		Str("role", role).
		Timestamp().
		Logger()}
}

// Nop discards everything. Tests use it.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID derives a logger that tags every entry with traceID.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// WithUser derives a logger that tags every entry with the authenticated
// caller.
func (l *Logger) WithUser(userID int64, role string) *Logger {
	return &Logger{l.With().Int64("user_id", userID).Str("user_role", role).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

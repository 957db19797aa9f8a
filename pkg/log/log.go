/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log provides a thin, named-logger wrapper around go.uber.org/zap with
// structured field helpers for the values this module logs most often: DID suffixes,
// operation types, and anchoring coordinates.
package log

import (
	"go.uber.org/zap"
)

// Logger wraps a named zap logger.
type Logger struct {
	zl *zap.Logger
}

// New creates a named Logger. Construction failures fall back to zap's no-op logger
// rather than panicking, since logging must never be able to bring down the processor.
func New(module string) *Logger {
	zl, err := zap.NewProduction()
	if err != nil {
		zl = zap.NewNop()
	}

	return &Logger{zl: zl.Named(module)}
}

// Debug logs a debug-level message with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zl.Debug(msg, fields...)
}

// Info logs an info-level message with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zl.Info(msg, fields...)
}

// Warn logs a warn-level message with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zl.Warn(msg, fields...)
}

// Error logs an error-level message with structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zl.Error(msg, fields...)
}

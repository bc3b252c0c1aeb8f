// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package with a JSON handler for
// production and a tint console handler for local development, plus a small set
// of helpers for capturing and asserting log output in tests.
package logger

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type loggerKey struct{}

const (
	levelSuffix  = "_LOG_LEVEL"
	formatSuffix = "_LOG_FORMAT"
)

// LevelVar holds the level shared by the package loggers.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is a pretty console logger that is used if no logger is provided.
var DefaultLogger = slog.New(NewPrettyHandler(&slog.HandlerOptions{
	Level: LevelVar,
},
	WithAutoColour(),
	WithDestinationWriter(os.Stderr),
))

// JSONLogger writes machine readable records to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(levelFromString(os.Getenv(EnvName())))
}

// New returns a copy of ctx carrying the given logger.
// If logger is nil, the default logger is stored instead.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the logger found in ctx.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).DebugContext(ctx, msg, args...)
}

// Info logs an info message with the logger found in ctx.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).InfoContext(ctx, msg, args...)
}

// Warn logs a warning message with the logger found in ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).WarnContext(ctx, msg, args...)
}

// Error logs an error message with the logger found in ctx.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).ErrorContext(ctx, msg, args...)
}

// EnvName returns the name of the environment variable controlling the log level.
// It is derived from the running executable, e.g. "cargo-foreach" gives
// "CARGO_FOREACH_LOG_LEVEL".
func EnvName() string {
	exec, _ := os.Executable()

	return envNameFor(exec)
}

// envNameFor cuts at both separators so the result does not depend on the host OS.
func envNameFor(executable string) string {
	name := executable[strings.LastIndexAny(executable, `/\`)+1:]
	name = strings.TrimSuffix(name, ".exe")
	name = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name)

	return strings.ToUpper(name) + levelSuffix
}

// FormatEnvName returns the name of the environment variable selecting the log format,
// e.g. "CARGO_FOREACH_LOG_FORMAT".
func FormatEnvName() string {
	return strings.TrimSuffix(EnvName(), levelSuffix) + formatSuffix
}

// FromEnv returns JSONLogger when the log format variable is set to "json",
// and DefaultLogger otherwise.
func FromEnv() *slog.Logger {
	if strings.EqualFold(strings.TrimSpace(os.Getenv(FormatEnvName())), "json") {
		return JSONLogger
	}

	return DefaultLogger
}

func levelFromString(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler writing to stderr, so that log lines never
// mix with the standard output of the commands being run.
//
// The level is read from an environment variable derived from the executable name.
// For an executable named "cargo-foreach" the variable is "CARGO_FOREACH_LOG_LEVEL".
// Accepted values are "DEBUG", "INFO", "WARN" and "ERROR"; anything else means "WARN".
package ctxlog

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, custom, Logger(New(context.Background(), custom)))
	assert.Same(t, DefaultLogger, Logger(New(context.Background(), nil)))
}

func TestLogger_NoLoggerInContext(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))

	//nolint:staticcheck
	ctx := context.WithValue(context.Background(), loggerKey{}, (*slog.Logger)(nil))
	assert.Same(t, DefaultLogger, Logger(ctx))
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := New(context.Background(), logger)

	Debug(ctx, "debug message", "k", "v")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=\"debug message\" k=v")
	assert.Contains(t, out, "level=INFO msg=\"info message\"")
	assert.Contains(t, out, "level=WARN msg=\"warn message\"")
	assert.Contains(t, out, "level=ERROR msg=\"error message\"")
}

func TestEnvNameFor(t *testing.T) {
	tests := []struct {
		executable string
		want       string
	}{
		{"/usr/local/bin/cargo-foreach", "CARGO_FOREACH_LOG_LEVEL"},
		{`C:\tools\cargo-foreach.exe`, "CARGO_FOREACH_LOG_LEVEL"},
		{`C:\tools/bin\cargo-foreach`, "CARGO_FOREACH_LOG_LEVEL"},
		{`/opt/dir\with\backslashes/cargo-foreach`, "CARGO_FOREACH_LOG_LEVEL"},
		{"ctxlog.test", "CTXLOG_TEST_LOG_LEVEL"},
		{"myapp", "MYAPP_LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.executable, func(t *testing.T) {
			assert.Equal(t, tt.want, envNameFor(tt.executable))
		})
	}
}

func TestLevelFromString(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" WARN ":  slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}

	for in, want := range tests {
		assert.Equal(t, want, levelFromString(in), "input %q", in)
	}
}

func TestLevelVarControlsDefaultLogger(t *testing.T) {
	old := LevelVar.Level()
	t.Cleanup(func() { LevelVar.Set(old) })

	LevelVar.Set(slog.LevelError)
	require.False(t, DefaultLogger.Enabled(context.Background(), slog.LevelWarn))

	LevelVar.Set(slog.LevelDebug)
	require.True(t, DefaultLogger.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromEnv(t *testing.T) {
	assert.True(t, strings.HasSuffix(FormatEnvName(), "_LOG_FORMAT"))

	t.Setenv(FormatEnvName(), "JSON")
	assert.Same(t, JSONLogger, FromEnv())

	t.Setenv(FormatEnvName(), "pretty")
	assert.Same(t, DefaultLogger, FromEnv())
}

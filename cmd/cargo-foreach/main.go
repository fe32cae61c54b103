// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the cargo-foreach command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/cargo-foreach/cmd"
	"github.com/matt-FFFFFF/cargo-foreach/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-foreach/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.FromEnv())

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	code := cmd.Execute(ctx, os.Args, os.Stdout, os.Stderr)

	signalbroker.Stop(sigCh)
	cancel()
	os.Exit(code)
}

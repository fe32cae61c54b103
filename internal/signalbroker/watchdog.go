// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"syscall"

	"github.com/matt-FFFFFF/cargo-foreach/internal/ctxlog"
)

const signalExitBase = 128

// exit is replaced in tests.
var exit = os.Exit

// Watch monitors the signal channel until it is closed.
// The first signal calls cancel, which stops the run once the running command has been
// interrupted. A second signal of a type already received terminates the process.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	sigMap := make(map[os.Signal]struct{})
	for sig := range sigCh {
		if _, ok := sigMap[sig]; ok {
			ctxlog.Logger(ctx).Warn("watchdog", "detail", "received second signal of type, forcefully terminating", "signal", sig.String())
			exit(ExitCode(sig))

			return
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received signal, stopping after the current command", "signal", sig.String())

		sigMap[sig] = struct{}{}

		cancel()
	}
}

// ExitCode returns the conventional shell exit code of a process terminated by sig.
func ExitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return signalExitBase + int(s)
	}

	return 1
}

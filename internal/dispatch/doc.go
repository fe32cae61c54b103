// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch runs the target command once in a project directory.
//
// The child inherits standard input and standard output. Standard error is inherited
// too, unless the dispatcher is quiet, in which case it is sent to the null device.
// Dispatch blocks until the child terminates; no timeout is applied.
//
// A command that cannot be started is reported as an error wrapping
// ErrCouldNotStartProcess. A command that starts and then fails, either with a non-zero
// exit code or by being killed by a signal, is not an error: it is described by the
// returned Result.
package dispatch

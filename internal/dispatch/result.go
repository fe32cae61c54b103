// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"os"
	"syscall"
	"time"
)

// Result is the outcome of one dispatch.
type Result struct {
	Name     string        // Candidate name
	Dir      string        // Working directory of the child
	Exited   bool          // The child exited normally, ExitCode is meaningful
	ExitCode int           // Exit code of the child, -1 when it did not exit normally
	Signal   os.Signal     // Signal that terminated the child, if known
	Duration time.Duration // Wall time between start and termination
}

// Success returns true if the child exited normally with exit code 0.
func (r *Result) Success() bool {
	return r.Exited && r.ExitCode == 0
}

// Signaled returns true if the child was terminated without exiting, e.g. by a signal.
func (r *Result) Signaled() bool {
	return !r.Exited
}

func resultFromState(name, dir string, state *os.ProcessState, d time.Duration) *Result {
	res := &Result{
		Name:     name,
		Dir:      dir,
		Exited:   state.Exited(),
		ExitCode: state.ExitCode(),
		Duration: d,
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		res.Signal = ws.Signal()
	}

	return res
}

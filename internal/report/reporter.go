// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/cargo-foreach/internal/color"
	"github.com/matt-FFFFFF/cargo-foreach/internal/dispatch"
	"github.com/matt-FFFFFF/cargo-foreach/internal/scan"
)

const (
	tracePrefix      = ">>"
	diagnosticPrefix = "process didn't exit successfully"
)

// Reporter prints the verbose trace and the failure diagnostics of a run.
type Reporter struct {
	Out     io.Writer // Trace destination, defaults to os.Stdout.
	Err     io.Writer // Diagnostic destination, defaults to os.Stderr.
	Quiet   bool      // Suppress failure diagnostics.
	Verbose bool      // Print the name of each directory before its dispatch.
	Colour  bool      // Paint the output with ANSI escape codes.
}

// Dispatching is called before the command is run in c.
func (r *Reporter) Dispatching(c scan.Candidate) {
	if !r.Verbose {
		return
	}

	fmt.Fprintf(r.out(), "%s %s\n", r.paint(tracePrefix, color.Bold, color.FgCyan), c.Name) // nolint:errcheck
}

// Finished is called with the result of every dispatch.
func (r *Reporter) Finished(res *dispatch.Result) {
	if r.Quiet || res == nil || res.Success() {
		return
	}

	fmt.Fprintln(r.err(), r.paint(Diagnostic(res), color.FgRed)) // nolint:errcheck
}

// Diagnostic returns the message describing an unsuccessful result.
func Diagnostic(res *dispatch.Result) string {
	if res.Signaled() {
		return diagnosticPrefix + " (terminated by signal)"
	}

	return fmt.Sprintf("%s (exit code: %d)", diagnosticPrefix, res.ExitCode)
}

func (r *Reporter) paint(s string, codes ...color.Code) string {
	if !r.Colour {
		return s
	}

	return color.Paint(s, codes...)
}

func (r *Reporter) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}

	return r.Out
}

func (r *Reporter) err() io.Writer {
	if r.Err == nil {
		return os.Stderr
	}

	return r.Err
}

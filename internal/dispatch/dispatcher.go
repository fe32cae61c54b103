// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/matt-FFFFFF/cargo-foreach/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-foreach/internal/scan"
)

// killGracePeriod is how long an interrupted child may take to exit before it is killed.
const killGracePeriod = 5 * time.Second

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrWaitFailed is returned when the process was started but its termination
	// status could not be collected.
	ErrWaitFailed = errors.New("failed to wait for process")
)

// Dispatcher runs one command, with fixed arguments, in a series of directories.
type Dispatcher struct {
	Command string    // Name or path of the executable; names without a separator are looked up in PATH.
	Args    []string  // Arguments to the command, do not include the executable name itself.
	Quiet   bool      // Discard the standard error of the child.
	Stdin   io.Reader // Defaults to os.Stdin.
	Stdout  io.Writer // Defaults to os.Stdout.
	Stderr  io.Writer // Defaults to os.Stderr, ignored when Quiet is set.
}

// New returns a Dispatcher bound to the standard streams of the current process.
func New(command string, args []string, quiet bool) *Dispatcher {
	return &Dispatcher{
		Command: command,
		Args:    args,
		Quiet:   quiet,
	}
}

// Dispatch runs the command with c as its working directory and waits for it.
// An error is only returned when the command could not be run at all.
func (d *Dispatcher) Dispatch(ctx context.Context, c scan.Candidate) (*Result, error) {
	logger := ctxlog.Logger(ctx).With("candidate", c.Name)
	logger.Debug("command info", "command", d.Command, "cwd", c.Path, "args", d.Args, "quiet", d.Quiet)

	cmd := exec.CommandContext(ctx, d.Command, d.Args...)
	cmd.Dir = c.Path
	cmd.Stdin = d.stdin()
	cmd.Stdout = d.stdout()
	cmd.Stderr = d.stderr()
	cmd.WaitDelay = killGracePeriod

	if runtime.GOOS != "windows" {
		cmd.Cancel = func() error {
			return cmd.Process.Signal(os.Interrupt)
		}
	}

	start := time.Now()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s in %s: %w", ErrCouldNotStartProcess, d.Command, c.Path, err)
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	err := cmd.Wait()
	elapsed := time.Since(start)

	var exitErr *exec.ExitError

	switch {
	case err == nil, errors.As(err, &exitErr):
	case cmd.ProcessState != nil:
		logger.Debug("process finished with wait error", "error", err)
	default:
		return nil, fmt.Errorf("%w: %s in %s: %w", ErrWaitFailed, d.Command, c.Path, err)
	}

	res := resultFromState(c.Name, c.Path, cmd.ProcessState, elapsed)
	logger.Debug("process finished", "exitCode", res.ExitCode, "signal", res.Signal, "duration", elapsed)

	return res, nil
}

func (d *Dispatcher) stdin() io.Reader {
	if d.Stdin == nil {
		return os.Stdin
	}

	return d.Stdin
}

func (d *Dispatcher) stdout() io.Writer {
	if d.Stdout == nil {
		return os.Stdout
	}

	return d.Stdout
}

// stderr returns nil when quiet, which os/exec connects to the null device.
func (d *Dispatcher) stderr() io.Writer {
	if d.Quiet {
		return nil
	}

	if d.Stderr == nil {
		return os.Stderr
	}

	return d.Stderr
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	foreach "github.com/matt-FFFFFF/cargo-foreach"
	"github.com/matt-FFFFFF/cargo-foreach/internal/color"
	"github.com/matt-FFFFFF/cargo-foreach/internal/config"
	"github.com/matt-FFFFFF/cargo-foreach/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-foreach/internal/dispatch"
	"github.com/matt-FFFFFF/cargo-foreach/internal/report"
	"github.com/matt-FFFFFF/cargo-foreach/internal/runner"
	"github.com/matt-FFFFFF/cargo-foreach/internal/scan"
	"github.com/urfave/cli/v3"
)

const (
	name           = "cargo-foreach"
	subcommandName = "foreach"

	directoryFlag = "directory"
	quietFlag     = "quiet"
	verboseFlag   = "verbose"
	markerFlag    = "marker"
	reportFlag    = "report"

	markerEnv = "CARGO_FOREACH_MARKER"
)

const usageLine = "Usage: " + name + " [-h] [-qv] [-C DIR] command [args...]"

// helpTemplate is rendered by urfave/cli for -h. It has no template actions.
const helpTemplate = usageLine + `
  -C DIR  switch to DIR before starting
  -q      suppress command error output
  -v      print directory names as they are processed

  --marker NAME  file identifying a project directory (default: Cargo.toml, env: ` + markerEnv + `)
  --report FILE  write a YAML report of the run to FILE

  -h      display this help
`

// ErrUsage is returned when the command line is invalid. The usage has already been printed.
var ErrUsage = errors.New("usage error")

// invocation carries the state of a single Execute call into the command action.
type invocation struct {
	stdout  io.Writer
	stderr  io.Writer
	command []string
}

// newRootCmd builds the root command. A new one is needed for every run as
// urfave/cli keeps parse state in the command.
func newRootCmd(inv *invocation) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "run a command in every project directory",
		Writer:    inv.stdout,
		ErrWriter: inv.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      directoryFlag,
				Aliases:   []string{"C"},
				Usage:     "switch to DIR before starting",
				Value:     config.DefaultBaseDir,
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    quietFlag,
				Aliases: []string{"q"},
				Usage:   "suppress command error output",
			},
			&cli.BoolFlag{
				Name:    verboseFlag,
				Aliases: []string{"v"},
				Usage:   "print directory names as they are processed",
			},
			&cli.StringFlag{
				Name:    markerFlag,
				Usage:   "file identifying a project directory",
				Value:   scan.DefaultMarker,
				Sources: cli.EnvVars(markerEnv),
			},
			&cli.StringFlag{
				Name:      reportFlag,
				Usage:     "write a YAML report of the run to FILE",
				TakesFile: true,
			},
		},
		UseShortOptionHandling:        true,
		HideHelpCommand:               true,
		CustomRootCommandHelpTemplate: helpTemplate,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			fmt.Fprintf(inv.stderr, "%s: %s\n%s\n", name, err, usageLine) // nolint:errcheck
			return errors.Join(ErrUsage, err)
		},
		// errors are mapped to exit codes by Execute
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action:         inv.action,
	}
}

// Execute runs the program with the given arguments, args[0] being the program name,
// and returns the exit code of the process.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	inv := &invocation{
		stdout: stdout,
		stderr: stderr,
	}
	root := newRootCmd(inv)

	var flags []string

	if len(args) > 0 {
		flags, inv.command = splitArgs(stripSubcommand(args[1:]), valueFlagNames(root.Flags))
	}

	ctxlog.Debug(ctx, "starting", "version", foreach.Version, "commit", foreach.Commit, "options", flags, "command", inv.command)

	err := root.Run(ctx, append([]string{name}, flags...))

	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 1
	default:
		ctxlog.Error(ctx, "command failed", "error", err)
		return 1
	}
}

func (inv *invocation) action(ctx context.Context, cmd *cli.Command) error {
	cfg := config.New()
	cfg.BaseDir = cmd.String(directoryFlag)
	cfg.Quiet = cmd.Bool(quietFlag)
	cfg.Verbose = cmd.Bool(verboseFlag)
	cfg.Marker = cmd.String(markerFlag)
	cfg.ReportFile = cmd.String(reportFlag)
	cfg.Command = inv.command

	fs := scan.FsFactory()

	if err := cfg.Validate(fs); err != nil {
		if errors.Is(err, config.ErrNoCommand) {
			fmt.Fprintln(inv.stderr, usageLine) // nolint:errcheck
			return errors.Join(ErrUsage, err)
		}

		return err
	}

	ctxlog.Debug(ctx, "configuration",
		"baseDir", cfg.BaseDir,
		"command", cfg.Command,
		"marker", cfg.Marker,
		"quiet", cfg.Quiet,
		"verbose", cfg.Verbose,
	)

	command, args := cfg.Command[0], cfg.Command[1:]

	r := &runner.Runner{
		Scanner: &scan.Scanner{Fs: fs, Base: cfg.BaseDir, Marker: cfg.Marker},
		Dispatcher: &dispatch.Dispatcher{
			Command: command,
			Args:    args,
			Quiet:   cfg.Quiet,
			Stdout:  inv.stdout,
			Stderr:  inv.stderr,
		},
		Reporter: &report.Reporter{
			Out:     inv.stdout,
			Err:     inv.stderr,
			Quiet:   cfg.Quiet,
			Verbose: cfg.Verbose,
			Colour:  colourFor(inv.stdout),
		},
	}

	summary, err := r.Run(ctx)
	if err != nil {
		return err
	}

	if cfg.ReportFile == "" {
		return nil
	}

	return report.WriteFile(fs, cfg.ReportFile, report.NewRun(cfg.BaseDir, command, args, summary.Results, summary.Failed))
}

func colourFor(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && color.EnabledFor(f)
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/cargo-foreach/internal/dispatch"
	"github.com/spf13/afero"
)

// ErrWriteReport is returned when the run report cannot be serialised or written.
var ErrWriteReport = errors.New("could not write run report")

const reportFileMode = 0o644

// Run is the serialisable outcome of a completed run.
type Run struct {
	BaseDir     string      `yaml:"baseDir"`
	Command     string      `yaml:"command"`
	Args        []string    `yaml:"args,omitempty"`
	Failed      int         `yaml:"failed"`
	Directories []Directory `yaml:"directories"`
}

// Directory is the outcome of the dispatch in one directory.
type Directory struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Success  bool   `yaml:"success"`
	ExitCode int    `yaml:"exitCode"`
	Signal   string `yaml:"signal,omitempty"`
	Duration string `yaml:"duration"`
}

// NewRun builds a Run from the results of a run, in dispatch order, and the
// number of them that failed as counted by the runner.
func NewRun(baseDir, command string, args []string, results []*dispatch.Result, failed int) *Run {
	run := &Run{
		BaseDir:     baseDir,
		Command:     command,
		Args:        args,
		Failed:      failed,
		Directories: make([]Directory, 0, len(results)),
	}

	for _, res := range results {
		d := Directory{
			Name:     res.Name,
			Path:     res.Dir,
			Success:  res.Success(),
			ExitCode: res.ExitCode,
			Duration: res.Duration.String(),
		}

		if res.Signal != nil {
			d.Signal = res.Signal.String()
		}

		run.Directories = append(run.Directories, d)
	}

	return run
}

// WriteYAML writes run to w as a YAML document.
func WriteYAML(w io.Writer, run *Run) error {
	b, err := yaml.Marshal(run)
	if err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	if _, err := w.Write(b); err != nil {
		return errors.Join(ErrWriteReport, err)
	}

	return nil
}

// WriteFile writes run as YAML to path on fs, replacing any existing file.
func WriteFile(fs afero.Fs, path string, run *Run) error {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, reportFileMode)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}

	if err := WriteYAML(f, run); err != nil {
		f.Close() // nolint:errcheck
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}

	return nil
}

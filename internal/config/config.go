// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config holds the validated settings of a run.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/cargo-foreach/internal/scan"
	"github.com/spf13/afero"
)

var (
	// ErrNotADirectory is returned when the base directory does not exist or is not a directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrNoCommand is returned when no command was given.
	ErrNoCommand = errors.New("no command given")
	// ErrInvalidMarker is returned when the project marker is not a plain file name.
	ErrInvalidMarker = errors.New("invalid project marker")
)

// DefaultBaseDir is the base directory used when none is given.
const DefaultBaseDir = "."

// Config is the configuration of a run.
type Config struct {
	BaseDir    string   // Directory whose immediate subdirectories are processed.
	Command    []string // Command to run in each directory followed by its arguments, passed verbatim.
	Quiet      bool     // Suppress the standard error of the command and failure diagnostics.
	Verbose    bool     // Print each directory name before the command is run in it.
	Marker     string   // File that identifies a project directory.
	ReportFile string   // Optional path of a YAML report written after a completed run.
}

// New returns a Config with defaults for everything but the command.
func New() *Config {
	return &Config{
		BaseDir: DefaultBaseDir,
		Marker:  scan.DefaultMarker,
	}
}

// Validate checks the configuration, reading the base directory through fs.
// The base directory is checked first, so an invalid one is reported even without a command.
func (c *Config) Validate(fs afero.Fs) error {
	fi, err := fs.Stat(c.BaseDir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNotADirectory, c.BaseDir, err)
	}

	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, c.BaseDir)
	}

	if err := validateMarker(c.Marker); err != nil {
		return err
	}

	// An empty name still counts as a command and fails when it is started.
	if len(c.Command) == 0 {
		return ErrNoCommand
	}

	return nil
}

func validateMarker(m string) error {
	switch {
	case m == "", m == ".", m == "..":
	case strings.ContainsAny(m, `/\`), filepath.Base(m) != m:
	default:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidMarker, m)
}

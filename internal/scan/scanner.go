// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"context"
	"errors"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/cargo-foreach/internal/ctxlog"
	"github.com/spf13/afero"
)

// DefaultMarker is the project marker used when none is configured.
const DefaultMarker = "Cargo.toml"

// ErrReadBase is returned when the entries of the base directory cannot be listed.
var ErrReadBase = errors.New("could not read base directory")

// Candidate is an immediate subdirectory of the base directory.
type Candidate struct {
	Name string // Entry name, also the sort key.
	Path string // Base directory joined with Name; used as the working directory.
}

// Scanner lists the candidates of a base directory and decides their eligibility.
type Scanner struct {
	Fs     afero.Fs // Filesystem to read, defaults to FsFactory().
	Base   string   // Directory whose immediate subdirectories are scanned.
	Marker string   // File that must exist directly inside a candidate, defaults to DefaultMarker.
}

// New creates a Scanner for base reading from FsFactory().
// An empty marker selects DefaultMarker.
func New(base, marker string) *Scanner {
	if marker == "" {
		marker = DefaultMarker
	}

	return &Scanner{
		Fs:     FsFactory(),
		Base:   base,
		Marker: marker,
	}
}

// List returns every subdirectory of the base directory sorted byte-wise by name.
// Entries that are not directories, or whose type cannot be determined, are left out.
// Symbolic links are followed.
func (s *Scanner) List(ctx context.Context) ([]Candidate, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := afero.ReadDir(s.fs(), s.Base)
	if err != nil {
		return nil, errors.Join(ErrReadBase, err)
	}

	candidates := make([]Candidate, 0, len(entries))

	for _, e := range entries {
		path := filepath.Join(s.Base, e.Name())

		info, err := s.fs().Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}

		candidates = append(candidates, Candidate{Name: e.Name(), Path: path})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		return strings.Compare(a.Name, b.Name)
	})

	return candidates, nil
}

// Eligible reports whether the command should run in c: the project marker must be
// present and no skip marker may exist.
func (s *Scanner) Eligible(ctx context.Context, c Candidate) bool {
	logger := ctxlog.Logger(ctx).With("candidate", c.Name)

	if !exists(s.fs(), filepath.Join(c.Path, s.marker())) {
		logger.Debug("no project marker, ignoring", "marker", s.marker())
		return false
	}

	if IsSkipped(s.fs(), s.Base, c) {
		logger.Debug("skip marker found, ignoring")
		return false
	}

	return true
}

// Scan lists the base directory and returns the eligible candidates in order.
// Listing happens immediately, so an unreadable base directory is reported here.
// Eligibility is decided as the sequence is consumed, just before each candidate is
// yielded. The sequence is meant to be ranged over once.
func (s *Scanner) Scan(ctx context.Context) (iter.Seq[Candidate], error) {
	candidates, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "listed base directory", "base", s.Base, "directories", len(candidates))

	return func(yield func(Candidate) bool) {
		for _, c := range candidates {
			if !s.Eligible(ctx, c) {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}, nil
}

func (s *Scanner) fs() afero.Fs {
	if s.Fs == nil {
		s.Fs = FsFactory()
	}

	return s.Fs
}

func (s *Scanner) marker() string {
	if s.Marker == "" {
		return DefaultMarker
	}

	return s.Marker
}

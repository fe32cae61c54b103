// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// SkipMarker is the file that opts a project out when placed inside it.
	SkipMarker = ".skip"
	// SkipSuffix is appended to a project name to form its sibling skip marker.
	SkipSuffix = ".skip"
)

// IsSkipped reports whether the candidate is excluded by a skip marker.
// The two markers are independent: a project can opt itself out with an inner ".skip",
// and a caller can exclude it from outside with "<name>.skip" in the base directory.
func IsSkipped(fs afero.Fs, base string, c Candidate) bool {
	return hasInnerSkip(fs, c) || hasSiblingSkip(fs, base, c)
}

func hasInnerSkip(fs afero.Fs, c Candidate) bool {
	return exists(fs, filepath.Join(c.Path, SkipMarker))
}

func hasSiblingSkip(fs afero.Fs, base string, c Candidate) bool {
	return exists(fs, filepath.Join(base, c.Name+SkipSuffix))
}

// exists treats every stat failure as absence.
func exists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)

	return ok && err == nil
}

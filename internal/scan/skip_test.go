// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scan

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestIsSkipped(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  bool
	}{
		{
			name:  "no markers",
			files: []string{"/base/foo/Cargo.toml"},
			want:  false,
		},
		{
			name:  "inner skip marker",
			files: []string{"/base/foo/Cargo.toml", "/base/foo/.skip"},
			want:  true,
		},
		{
			name:  "sibling skip marker",
			files: []string{"/base/foo/Cargo.toml", "/base/foo.skip"},
			want:  true,
		},
		{
			name:  "both markers",
			files: []string{"/base/foo/.skip", "/base/foo.skip"},
			want:  true,
		},
		{
			name:  "sibling marker of another project",
			files: []string{"/base/foo/Cargo.toml", "/base/foobar.skip", "/base/fo.skip"},
			want:  false,
		},
		{
			name:  "skip marker nested deeper is ignored",
			files: []string{"/base/foo/sub/.skip"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			_ = fs.MkdirAll("/base/foo", 0o755)
			dummyFsWithFiles(fs, tt.files)

			got := IsSkipped(fs, "/base", Candidate{Name: "foo", Path: "/base/foo"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSkipped_MarkerMayBeADirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/base/foo", 0o755)
	_ = fs.MkdirAll("/base/foo.skip", 0o755)

	assert.True(t, IsSkipped(fs, "/base", Candidate{Name: "foo", Path: "/base/foo"}))
}

func TestIsSkipped_UnreadableFilesystemMeansNotSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()

	assert.False(t, IsSkipped(fs, "/missing", Candidate{Name: "foo", Path: "/missing/foo"}))
}

func dummyFsWithFiles(fs afero.Fs, fileNames []string) {
	for _, name := range fileNames {
		_ = afero.WriteFile(fs, name, []byte{}, 0o644)
	}
}

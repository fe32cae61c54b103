// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripSubcommand(t *testing.T) {
	assert.Equal(t, []string{"-v", "ls"}, stripSubcommand([]string{"foreach", "-v", "ls"}))
	assert.Equal(t, []string{"ls", "foreach"}, stripSubcommand([]string{"ls", "foreach"}))
	assert.Empty(t, stripSubcommand([]string{"foreach"}))
	assert.Empty(t, stripSubcommand(nil))
}

func TestValueFlagNames(t *testing.T) {
	got := valueFlagNames(newRootCmd(&invocation{}).Flags)

	assert.Equal(t, map[string]bool{
		"directory": true,
		"C":         true,
		"marker":    true,
		"report":    true,
	}, got)
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantFlags   []string
		wantCommand []string
	}{
		{
			name:        "command only",
			args:        []string{"cargo", "build"},
			wantCommand: []string{"cargo", "build"},
		},
		{
			name:        "options are not parsed after the command",
			args:        []string{"-v", "cargo", "-q", "--directory", "x"},
			wantFlags:   []string{"-v"},
			wantCommand: []string{"cargo", "-q", "--directory", "x"},
		},
		{
			name:        "short option with separate value",
			args:        []string{"-C", "crates", "ls"},
			wantFlags:   []string{"-C", "crates"},
			wantCommand: []string{"ls"},
		},
		{
			name:        "value that looks like a command",
			args:        []string{"-C", "-weird-dir", "ls"},
			wantFlags:   []string{"-C", "-weird-dir"},
			wantCommand: []string{"ls"},
		},
		{
			name:        "cluster ending in a value option",
			args:        []string{"-qvC", "crates", "ls"},
			wantFlags:   []string{"-qv", "-C", "crates"},
			wantCommand: []string{"ls"},
		},
		{
			name:        "attached value",
			args:        []string{"-qCcrates", "ls"},
			wantFlags:   []string{"-q", "-C", "crates"},
			wantCommand: []string{"ls"},
		},
		{
			name:        "long options",
			args:        []string{"--verbose", "--marker", "go.mod", "--report=out.yaml", "go", "test"},
			wantFlags:   []string{"--verbose", "--marker", "go.mod", "--report=out.yaml"},
			wantCommand: []string{"go", "test"},
		},
		{
			name:        "long option with a single dash",
			args:        []string{"-marker", "go.mod", "go"},
			wantFlags:   []string{"-marker", "go.mod"},
			wantCommand: []string{"go"},
		},
		{
			name:        "double dash ends options",
			args:        []string{"-v", "--", "-q", ""},
			wantFlags:   []string{"-v"},
			wantCommand: []string{"-q", ""},
		},
		{
			name:        "lone dash is a command",
			args:        []string{"-", "x"},
			wantCommand: []string{"-", "x"},
		},
		{
			name:        "dash digit is a command",
			args:        []string{"-1"},
			wantCommand: []string{"-1"},
		},
		{
			name:        "empty arguments are kept",
			args:        []string{"echo", "", " a "},
			wantCommand: []string{"echo", "", " a "},
		},
		{
			name:      "missing value",
			args:      []string{"-q", "-C"},
			wantFlags: []string{"-q", "-C"},
		},
		{
			name:      "no command",
			args:      []string{"-qv"},
			wantFlags: []string{"-qv"},
		},
	}

	valueFlags := valueFlagNames(newRootCmd(&invocation{}).Flags)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, command := splitArgs(tt.args, valueFlags)
			assert.Equal(t, tt.wantFlags, flags)
			assert.Equal(t, tt.wantCommand, command)
		})
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"strings"
	"syscall"
	"testing"

	"github.com/matt-FFFFFF/cargo-foreach/internal/dispatch"
	"github.com/matt-FFFFFF/cargo-foreach/internal/scan"
	"github.com/stretchr/testify/assert"
)

var (
	ok       = &dispatch.Result{Name: "ok", Exited: true, ExitCode: 0}
	exited42 = &dispatch.Result{Name: "bad", Exited: true, ExitCode: 42}
	killed   = &dispatch.Result{Name: "killed", Exited: false, ExitCode: -1, Signal: syscall.SIGKILL}
)

func newTestReporter(quiet, verbose bool) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	return &Reporter{Out: out, Err: errOut, Quiet: quiet, Verbose: verbose}, out, errOut
}

func TestDiagnostic(t *testing.T) {
	assert.Equal(t, "process didn't exit successfully (exit code: 42)", Diagnostic(exited42))
	assert.Equal(t, "process didn't exit successfully (terminated by signal)", Diagnostic(killed))
}

func TestReporter_Finished(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		results []*dispatch.Result
		want    string
	}{
		{
			name:    "success prints nothing",
			results: []*dispatch.Result{ok},
			want:    "",
		},
		{
			name:    "failures print one line each",
			results: []*dispatch.Result{exited42, ok, killed},
			want: "process didn't exit successfully (exit code: 42)\n" +
				"process didn't exit successfully (terminated by signal)\n",
		},
		{
			name:    "quiet suppresses diagnostics",
			quiet:   true,
			results: []*dispatch.Result{exited42, killed},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out, errOut := newTestReporter(tt.quiet, true)

			for _, res := range tt.results {
				r.Finished(res)
			}

			assert.Equal(t, tt.want, errOut.String())
			assert.Empty(t, out.String(), "diagnostics never go to stdout")
		})
	}
}

func TestReporter_Dispatching(t *testing.T) {
	r, out, errOut := newTestReporter(false, true)

	r.Dispatching(scan.Candidate{Name: "alpha", Path: "/base/alpha"})
	r.Dispatching(scan.Candidate{Name: "beta", Path: "/base/beta"})

	assert.Equal(t, ">> alpha\n>> beta\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestReporter_DispatchingNotVerbose(t *testing.T) {
	r, out, _ := newTestReporter(true, false)

	r.Dispatching(scan.Candidate{Name: "alpha"})

	assert.Empty(t, out.String())
}

func TestReporter_Colour(t *testing.T) {
	r, out, errOut := newTestReporter(false, true)
	r.Colour = true

	r.Dispatching(scan.Candidate{Name: "alpha"})
	r.Finished(exited42)

	assert.True(t, strings.HasPrefix(out.String(), "\033["), "trace prefix is painted")
	assert.True(t, strings.HasSuffix(out.String(), " alpha\n"), "directory name is not painted")
	assert.Contains(t, errOut.String(), "(exit code: 42)")
	assert.True(t, strings.HasPrefix(errOut.String(), "\033["))
}

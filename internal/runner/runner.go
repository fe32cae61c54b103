// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/matt-FFFFFF/cargo-foreach/internal/ctxlog"
	"github.com/matt-FFFFFF/cargo-foreach/internal/dispatch"
	"github.com/matt-FFFFFF/cargo-foreach/internal/scan"
)

// ErrInterrupted is returned when the run was stopped before every directory was processed.
var ErrInterrupted = errors.New("run interrupted")

// Scanner yields the eligible directories of a base directory.
type Scanner interface {
	Scan(ctx context.Context) (iter.Seq[scan.Candidate], error)
}

// Dispatcher runs the command in one directory.
type Dispatcher interface {
	Dispatch(ctx context.Context, c scan.Candidate) (*dispatch.Result, error)
}

// Reporter is told about every dispatch and its result.
type Reporter interface {
	Dispatching(c scan.Candidate)
	Finished(res *dispatch.Result)
}

// Runner processes the directories yielded by Scanner sequentially.
type Runner struct {
	Scanner    Scanner
	Dispatcher Dispatcher
	Reporter   Reporter
}

// Summary is the outcome of a run.
type Summary struct {
	Results  []*dispatch.Result // One per dispatched directory, in dispatch order.
	Failed   int                // Number of results that were not successful.
	Duration time.Duration
}

// Run scans the base directory and dispatches the command in each eligible directory.
// The returned Summary covers the directories dispatched so far, including when an
// error is returned.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	seq, err := r.Scanner.Scan(ctx)
	if err != nil {
		return summary, err
	}

	for c := range seq {
		if ctx.Err() != nil {
			summary.Duration = time.Since(start)
			return summary, fmt.Errorf("%w: before %s: %w", ErrInterrupted, c.Name, context.Cause(ctx))
		}

		r.Reporter.Dispatching(c)

		res, err := r.Dispatcher.Dispatch(ctx, c)
		if err != nil {
			summary.Duration = time.Since(start)
			return summary, err
		}

		summary.Results = append(summary.Results, res)
		if !res.Success() {
			summary.Failed++
		}

		r.Reporter.Finished(res)
	}

	summary.Duration = time.Since(start)

	if ctx.Err() != nil {
		return summary, fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
	}

	ctxlog.Info(ctx, "run complete",
		"dispatched", len(summary.Results),
		"failed", summary.Failed,
		"duration", summary.Duration,
	)

	return summary, nil
}

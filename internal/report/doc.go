// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders the progress and outcome of a run.
//
// The Reporter writes the human readable trace: a ">> name" line before each dispatch when
// verbose, and a one line diagnostic on standard error for every directory whose command
// did not succeed, unless quiet. WriteYAML serialises the outcome of a completed run.
package report

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner executes a command in every eligible project directory, one at a time,
// in byte-wise name order.
//
// A directory whose command fails does not stop the run. A command that cannot be
// started, a base directory that cannot be read, or an interrupt does.
package runner

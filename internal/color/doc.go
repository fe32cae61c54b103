// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether ANSI colour should be written and wraps strings in
// ANSI escape codes. NO_COLOR disables colour, FORCE_COLOR enables it, and otherwise
// colour is only used when the destination is a terminal (golang.org/x/term).
package color

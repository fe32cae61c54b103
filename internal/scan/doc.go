// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scan enumerates the project directories directly below a base directory.
//
// A subdirectory is a candidate when it contains the project marker file (Cargo.toml by
// default). A candidate is skipped when it contains a ".skip" file, or when a file named
// "<name>.skip" sits next to it in the base directory. Candidates are yielded in
// byte-wise order of their names so that repeated runs dispatch in the same order.
//
// The package never writes to the filesystem it reads.
package scan

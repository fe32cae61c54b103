// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/urfave/cli/v3"
)

// stripSubcommand removes the subcommand name cargo passes to external subcommands,
// so that `cargo foreach -v ls` and `cargo-foreach -v ls` are equivalent.
func stripSubcommand(args []string) []string {
	if len(args) > 0 && args[0] == subcommandName {
		return args[1:]
	}

	return args
}

// valueFlagNames returns the names and aliases of the flags that take a value.
func valueFlagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)

	for _, f := range flags {
		if _, ok := f.(*cli.StringFlag); !ok {
			continue
		}

		for _, n := range f.Names() {
			names[n] = true
		}
	}

	return names
}

// splitArgs separates the leading options from the command and its arguments.
// The first argument that is not an option, or the one following "--", starts the command.
// Nothing from the command onwards is interpreted.
//
// Clusters of short options are normalised so that a short option taking a value always
// stands alone with its value in the next element, e.g. "-qvCdir" becomes "-qv", "-C", "dir".
func splitArgs(args []string, valueFlags map[string]bool) (flags, command []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]

		switch {
		case a == "--":
			return flags, args[i+1:]
		case !isOption(a):
			return flags, args[i:]
		case strings.HasPrefix(a, "--"), strings.Contains(a, "="):
			flags = append(flags, a)
			if !strings.Contains(a, "=") && valueFlags[strings.TrimLeft(a, "-")] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			cluster := a[1:]

			if len(cluster) > 1 && valueFlags[cluster] {
				// long option written with a single dash
				flags = append(flags, a)
				if i+1 < len(args) {
					i++
					flags = append(flags, args[i])
				}

				continue
			}

			idx := strings.IndexFunc(cluster, func(r rune) bool { return valueFlags[string(r)] })
			if idx < 0 {
				flags = append(flags, a)
				continue
			}

			if idx > 0 {
				flags = append(flags, "-"+cluster[:idx])
			}

			_, size := utf8.DecodeRuneInString(cluster[idx:])
			flags = append(flags, "-"+cluster[idx:idx+size])

			switch {
			case idx+size < len(cluster):
				flags = append(flags, cluster[idx+size:])
			case i+1 < len(args):
				i++
				flags = append(flags, args[i])
			}
		}
	}

	return flags, nil
}

// isOption reports whether a looks like an option rather than the command.
// A lone dash and a dash followed by something other than a letter are not options.
func isOption(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}

	if a[1] == '-' {
		return true
	}

	r, _ := utf8.DecodeRuneInString(a[1:])

	return unicode.IsLetter(r)
}

// SPDX-License-Identifier: MPL-2.0

// Package executor spawns single shell command lines against the target
// platform's native shell and captures the environment changes they make.
// A child process cannot mutate its parent's environment, so the executor
// appends the shell's environment-printing builtin to every command line,
// redirected into a transient dump file, and diffs the dump against the
// pre-execution snapshot. Higher layers only ever see the resulting delta,
// never the file mechanism.
package executor

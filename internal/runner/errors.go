// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"errors"
	"fmt"
	"strings"

	"zbuild-cli/internal/executor"
)

// Sentinel errors for programmatic detection with errors.Is.
var (
	// ErrCommandFailed is wrapped by CommandError.
	ErrCommandFailed = errors.New("command failed")
	// ErrBlockNotFound is wrapped by BlockNotFoundError.
	ErrBlockNotFound = errors.New("block not found")
	// ErrBlockCycle is wrapped by BlockCycleError.
	ErrBlockCycle = errors.New("block reference cycle")
)

type (
	// CommandError reports a user command that exited non-zero.
	CommandError struct {
		Scope    string
		Command  string
		ExitCode executor.ExitCode
	}

	// BlockNotFoundError reports a block reference that matches no entry in
	// the block table.
	BlockNotFoundError struct {
		Name string
	}

	// BlockCycleError reports a block that was re-entered while one of its
	// own invocations was still in flight.
	BlockCycleError struct {
		Name  string
		Trail []string
	}
)

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s command failed: '%s' (exit %s)", e.Scope, e.Command, e.ExitCode)
}

// Unwrap returns ErrCommandFailed so callers can use errors.Is.
func (e *CommandError) Unwrap() error { return ErrCommandFailed }

// Error implements the error interface.
func (e *BlockNotFoundError) Error() string {
	return fmt.Sprintf("block %q not found in block table", e.Name)
}

// Unwrap returns ErrBlockNotFound so callers can use errors.Is.
func (e *BlockNotFoundError) Unwrap() error { return ErrBlockNotFound }

// Error implements the error interface.
func (e *BlockCycleError) Error() string {
	if len(e.Trail) > 0 {
		return fmt.Sprintf("block %q re-entered while still running (%s)",
			e.Name, strings.Join(append(e.Trail, e.Name), " -> "))
	}
	return fmt.Sprintf("block %q re-entered while still running", e.Name)
}

// Unwrap returns ErrBlockCycle so callers can use errors.Is.
func (e *BlockCycleError) Unwrap() error { return ErrBlockCycle }

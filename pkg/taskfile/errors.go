// SPDX-License-Identifier: MPL-2.0

package taskfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic detection with errors.Is.
var (
	// ErrParse is wrapped by ParseError.
	ErrParse = errors.New("task file parse error")
	// ErrConstraint is wrapped by ConstraintError.
	ErrConstraint = errors.New("task file constraint violation")
)

type (
	// ParseError reports a malformed task file document.
	ParseError struct {
		Path string
		Err  error
	}

	// ConstraintError reports a structurally invalid task file, such as a
	// block whose name collides with a reserved section or platform name.
	ConstraintError struct {
		Detail string
	}
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse task file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse task file: %v", e.Err)
}

// Unwrap returns ErrParse so callers can use errors.Is.
func (e *ParseError) Unwrap() error { return ErrParse }

// Error implements the error interface.
func (e *ConstraintError) Error() string { return e.Detail }

// Unwrap returns ErrConstraint so callers can use errors.Is.
func (e *ConstraintError) Unwrap() error { return ErrConstraint }

func constraintf(format string, args ...any) *ConstraintError {
	return &ConstraintError{Detail: fmt.Sprintf(format, args...)}
}

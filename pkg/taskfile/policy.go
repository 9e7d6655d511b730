// SPDX-License-Identifier: MPL-2.0

package taskfile

import "fmt"

// Execution policy constants, in task-file spelling.
const (
	// FastFail aborts the whole run at the first failing step.
	FastFail ExecutionPolicy = "fast_fail"
	// CarryForward records failures and keeps executing, reporting the
	// accumulated failures once the run completes.
	CarryForward ExecutionPolicy = "carry_forward"
)

// ExecutionPolicy governs how a scope reacts to a failing step. The zero
// value means "not set"; use Resolve to fall back to an inherited policy.
type ExecutionPolicy string

// ParsePolicy converts a user-supplied policy name.
func ParsePolicy(name string) (ExecutionPolicy, error) {
	switch ExecutionPolicy(name) {
	case FastFail, CarryForward:
		return ExecutionPolicy(name), nil
	default:
		return "", fmt.Errorf("unknown execution policy %q (expected fast_fail or carry_forward)", name)
	}
}

// IsValid reports whether the policy is one of the two known values.
// The empty (unset) value is not valid on its own.
func (p ExecutionPolicy) IsValid() bool {
	return p == FastFail || p == CarryForward
}

// Resolve returns the policy itself when set, otherwise the fallback, and
// finally FastFail when both are unset.
func (p ExecutionPolicy) Resolve(fallback ExecutionPolicy) ExecutionPolicy {
	if p.IsValid() {
		return p
	}
	if fallback.IsValid() {
		return fallback
	}
	return FastFail
}

// String returns the task-file spelling of the policy.
func (p ExecutionPolicy) String() string { return string(p) }

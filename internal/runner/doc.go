// SPDX-License-Identifier: MPL-2.0

// Package runner walks the fixed lifecycle section order, dispatches each
// step either to the shell executor or to the recursive block resolver, and
// folds every resulting environment delta back into the enclosing scope.
// Failures are adjudicated by the execution policy in effect at the point of
// failure: fast_fail aborts the whole run, carry_forward records the failure
// and keeps going. Execution is strictly sequential; no two commands ever run
// concurrently.
package runner

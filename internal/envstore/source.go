// SPDX-License-Identifier: MPL-2.0

package envstore

import "fmt"

// Variable sources in ascending priority order. A write from a source is
// accepted when its priority is greater than or equal to the priority of the
// source that produced the current value.
const (
	// SourceDefault is the ambient OS environment captured at startup.
	SourceDefault Source = iota + 1
	// SourceGlobal is the task file's global configuration.
	SourceGlobal
	// SourceLocal is a block's or per-platform section's local configuration.
	SourceLocal
	// SourcePassed is a value supplied on the command line (--env/--env-file).
	SourcePassed
	// SourceScript is a value captured from a just-run shell command.
	SourceScript
)

// Source identifies where a variable's value came from.
type Source int

// Priority returns the numeric rank of the source; higher ranks win.
func (s Source) Priority() int { return int(s) }

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceGlobal:
		return "global"
	case SourceLocal:
		return "local"
	case SourcePassed:
		return "passed"
	case SourceScript:
		return "script"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"zbuild-cli/pkg/platform"
	"zbuild-cli/pkg/taskfile"
)

// Options is the immutable run configuration, produced by the CLI layer and
// consumed by the Runner. The Runner never mutates it.
type Options struct {
	// OS is the target platform whose step lists and shell are used.
	OS platform.OS
	// Dir is the working directory for every command; empty means the
	// process working directory.
	Dir string
	// DryRun logs commands without executing them. Block references are
	// still resolved so the full step sequence is shown.
	DryRun bool
	// Sections is an explicit allow-list. When nil, all sections except
	// Clean (and any global skip_sections entries) run; when set, exactly
	// the named sections run, in the fixed lifecycle order.
	Sections []taskfile.Section
	// Policy overrides the task file's global execution policy when set.
	Policy taskfile.ExecutionPolicy
	// ExtraEnv holds externally supplied variables (--env), applied to the
	// global store with SourcePassed before any section runs.
	ExtraEnv map[string]string
}

// sectionSelected reports whether the section should run under the
// allow-list and skip rules.
func (o Options) sectionSelected(s taskfile.Section, global *taskfile.GlobalConfig) bool {
	if o.Sections != nil {
		for _, want := range o.Sections {
			if want == s {
				return true
			}
		}
		return false
	}
	// Clean is opt-in only.
	if s == taskfile.Clean {
		return false
	}
	if global != nil {
		for _, name := range global.SkipSections {
			if skipped, err := taskfile.ParseSection(name); err == nil && skipped == s {
				return false
			}
		}
	}
	return true
}

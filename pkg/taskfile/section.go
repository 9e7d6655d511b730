// SPDX-License-Identifier: MPL-2.0

package taskfile

import (
	"fmt"
	"strings"
)

// The eight lifecycle sections in their fixed execution order.
const (
	PreBuild Section = iota
	Build
	PostBuild
	Test
	PreDeploy
	Deploy
	PostDeploy
	Clean
)

// Section is one of the eight fixed lifecycle phases. Sections always run in
// declaration order; Clean only runs when explicitly requested.
type Section int

// sectionKeys maps each section to its task-file key.
var sectionKeys = [...]string{
	PreBuild:   "prebuild",
	Build:      "build",
	PostBuild:  "postbuild",
	Test:       "test",
	PreDeploy:  "predeploy",
	Deploy:     "deploy",
	PostDeploy: "postdeploy",
	Clean:      "clean",
}

// sectionNames maps each section to its display name.
var sectionNames = [...]string{
	PreBuild:   "PreBuild",
	Build:      "Build",
	PostBuild:  "PostBuild",
	Test:       "Test",
	PreDeploy:  "PreDeploy",
	Deploy:     "Deploy",
	PostDeploy: "PostDeploy",
	Clean:      "Clean",
}

// AllSections returns the sections in execution order.
func AllSections() []Section {
	return []Section{PreBuild, Build, PostBuild, Test, PreDeploy, Deploy, PostDeploy, Clean}
}

// ParseSection accepts either the task-file key ("prebuild") or the display
// name ("PreBuild"), case-insensitively.
func ParseSection(name string) (Section, error) {
	lowered := strings.ToLower(strings.TrimSpace(name))
	for _, s := range AllSections() {
		if lowered == sectionKeys[s] {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q (expected one of %s)", name, strings.Join(sectionKeys[:], ", "))
}

// IsSectionName reports whether name is one of the eight reserved section keys.
func IsSectionName(name string) bool {
	_, err := ParseSection(name)
	return err == nil
}

// Key returns the lowercase task-file key for the section.
func (s Section) Key() string {
	if s < PreBuild || s > Clean {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionKeys[s]
}

// String returns the display name of the section.
func (s Section) String() string {
	if s < PreBuild || s > Clean {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionNames[s]
}

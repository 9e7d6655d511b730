// SPDX-License-Identifier: MPL-2.0

package taskfile

import (
	"zbuild-cli/pkg/platform"
)

type (
	// Config is the root of a parsed task file.
	Config struct {
		// Tasks holds the eight optional lifecycle sections.
		Tasks Tasks `yaml:"tasks"`
		// Blocks is the reusable named-block table. A step that consists of a
		// single unquoted token naming an entry here is a block reference.
		Blocks map[string]Block `yaml:"blocks"`
		// Global is the optional top-level configuration.
		Global *GlobalConfig `yaml:"config"`
	}

	// Tasks maps each lifecycle section to its per-platform step lists.
	Tasks struct {
		PreBuild   *PlatformSteps `yaml:"prebuild"`
		Build      *PlatformSteps `yaml:"build"`
		PostBuild  *PlatformSteps `yaml:"postbuild"`
		Test       *PlatformSteps `yaml:"test"`
		PreDeploy  *PlatformSteps `yaml:"predeploy"`
		Deploy     *PlatformSteps `yaml:"deploy"`
		PostDeploy *PlatformSteps `yaml:"postdeploy"`
		Clean      *PlatformSteps `yaml:"clean"`
	}

	// PlatformSteps holds one optional step list per supported platform.
	PlatformSteps struct {
		Windows *StepList `yaml:"windows"`
		Linux   *StepList `yaml:"linux"`
		Macos   *StepList `yaml:"macos"`
	}

	// StepList is an ordered list of steps with an optional scoped
	// configuration override.
	StepList struct {
		Steps  []string     `yaml:"steps"`
		Config *LocalConfig `yaml:"config"`
	}

	// Block is a reusable named list of steps, invoked by bare-name reference
	// from any step list.
	Block struct {
		Steps  []string     `yaml:"steps"`
		Config *LocalConfig `yaml:"config"`
	}

	// LocalConfig is the scoped configuration a step list or block may carry.
	// Its settings apply to the steps inside that scope only.
	LocalConfig struct {
		ExecutionPolicy ExecutionPolicy   `yaml:"execution_policy"`
		Env             map[string]string `yaml:"env"`
	}

	// GlobalConfig is the optional top-level configuration.
	GlobalConfig struct {
		ExecutionPolicy ExecutionPolicy   `yaml:"execution_policy"`
		Env             map[string]string `yaml:"env"`
		// SkipSections names sections excluded from default runs. An explicit
		// section filter on the command line overrides this list.
		SkipSections []string `yaml:"skip_sections"`
	}
)

// SectionSteps returns the per-platform step lists for a section, or nil when
// the task file does not define the section.
func (t *Tasks) SectionSteps(s Section) *PlatformSteps {
	switch s {
	case PreBuild:
		return t.PreBuild
	case Build:
		return t.Build
	case PostBuild:
		return t.PostBuild
	case Test:
		return t.Test
	case PreDeploy:
		return t.PreDeploy
	case Deploy:
		return t.Deploy
	case PostDeploy:
		return t.PostDeploy
	case Clean:
		return t.Clean
	default:
		return nil
	}
}

// ForOS returns the step list for the given platform, or nil when the section
// defines none.
func (p *PlatformSteps) ForOS(os platform.OS) *StepList {
	if p == nil {
		return nil
	}
	switch os {
	case platform.Windows:
		return p.Windows
	case platform.Linux:
		return p.Linux
	case platform.MacOS:
		return p.Macos
	default:
		return nil
	}
}

// GlobalPolicy returns the configured global execution policy, or the unset
// value when the task file has no global configuration.
func (c *Config) GlobalPolicy() ExecutionPolicy {
	if c.Global == nil {
		return ""
	}
	return c.Global.ExecutionPolicy
}

// LookupBlock returns the named block and whether it exists.
func (c *Config) LookupBlock(name string) (Block, bool) {
	b, ok := c.Blocks[name]
	return b, ok
}

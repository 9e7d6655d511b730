// SPDX-License-Identifier: MPL-2.0

package taskfile

import (
	"sort"
	"strings"

	"zbuild-cli/pkg/platform"
)

// Validate enforces the structural constraints of the task model:
//
//   - block names must not collide with section or platform names
//   - no step may be empty or blank
//   - skip_sections entries must name known sections
//   - block references must not form a cycle
//
// Violations are ConstraintErrors and surface at load time, before any step
// is executed.
func Validate(cfg *Config) error {
	names := make([]string, 0, len(cfg.Blocks))
	for name := range cfg.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if IsSectionName(name) {
			return constraintf("block name %q conflicts with a reserved section name", name)
		}
		if platform.OS(name).IsValid() {
			return constraintf("block name %q conflicts with a reserved operating system name", name)
		}
		if strings.TrimSpace(name) == "" {
			return constraintf("block names must not be blank")
		}
		if strings.ContainsAny(name, " \t") {
			return constraintf("block name %q must be a single token without whitespace", name)
		}

		block := cfg.Blocks[name]
		if err := validateSteps(block.Steps, "block "+name); err != nil {
			return err
		}
		if err := validateLocalConfig(block.Config, "block "+name); err != nil {
			return err
		}
	}

	for _, section := range AllSections() {
		ps := cfg.Tasks.SectionSteps(section)
		if ps == nil {
			continue
		}
		for _, os := range platform.All() {
			list := ps.ForOS(os)
			if list == nil {
				continue
			}
			scope := section.Key() + "." + os.String()
			if err := validateSteps(list.Steps, "section "+scope); err != nil {
				return err
			}
			if err := validateLocalConfig(list.Config, "section "+scope); err != nil {
				return err
			}
		}
	}

	if cfg.Global != nil {
		if p := cfg.Global.ExecutionPolicy; p != "" && !p.IsValid() {
			return constraintf("global config: unknown execution policy %q", p)
		}
		for _, name := range cfg.Global.SkipSections {
			if !IsSectionName(name) {
				return constraintf("skip_sections entry %q does not name a section", name)
			}
		}
	}

	return validateBlockCycles(cfg)
}

func validateSteps(steps []string, scope string) error {
	for i, step := range steps {
		if strings.TrimSpace(step) == "" {
			return constraintf("empty step at position %d in %s", i+1, scope)
		}
	}
	return nil
}

func validateLocalConfig(lc *LocalConfig, scope string) error {
	if lc == nil {
		return nil
	}
	if p := lc.ExecutionPolicy; p != "" && !p.IsValid() {
		return constraintf("%s: unknown execution policy %q", scope, p)
	}
	return nil
}

// validateBlockCycles rejects block tables whose references form a cycle.
// A step references a block iff it is a single whitespace-free token naming a
// table entry, so the reference graph is fully static and can be walked at
// load time. The runner keeps its own in-flight guard as a backstop.
func validateBlockCycles(cfg *Config) error {
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(cfg.Blocks))

	var visit func(name string, trail []string) error
	visit = func(name string, trail []string) error {
		switch state[name] {
		case done:
			return nil
		case inProgress:
			return constraintf("block reference cycle: %s", strings.Join(append(trail, name), " -> "))
		}
		state[name] = inProgress
		for _, step := range cfg.Blocks[name].Steps {
			if _, ok := cfg.Blocks[step]; ok {
				if err := visit(step, append(trail, name)); err != nil {
					return err
				}
			}
		}
		state[name] = done
		return nil
	}

	names := make([]string, 0, len(cfg.Blocks))
	for name := range cfg.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return err
		}
	}
	return nil
}

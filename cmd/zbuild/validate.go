// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"

	"zbuild-cli/pkg/platform"
	"zbuild-cli/pkg/taskfile"
)

var validateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Validate a task file without running it",
	Long: `Parse and validate a task file without executing anything.

Structural problems (reserved block names, empty steps, block reference
cycles) are errors. Steps destined for linux or macos are additionally
checked with a POSIX shell parser; syntax problems there are reported as
warnings, since the step may rely on shell extensions.

Examples:
  zbuild validate                Validate zbuild.yml
  zbuild validate ci/zbuild.yml  Validate a specific file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := userCfg.TaskFile
		if len(args) == 1 {
			path = args[0]
		}

		cfg, err := taskfile.Load(path)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Invalid: ")+err.Error())
			return &ExitError{Code: 1, Err: err}
		}

		for _, warning := range shellSyntaxWarnings(cfg) {
			fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning: ")+warning)
		}

		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("OK: ")+path+" is a valid task file")
		return nil
	},
}

// shellSyntaxWarnings runs every POSIX-destined literal step through a shell
// parser and collects the steps that fail to parse. Block references are
// skipped; windows step lists are not checked, since cmd.exe syntax is not
// POSIX.
func shellSyntaxWarnings(cfg *taskfile.Config) []string {
	parser := syntax.NewParser()
	var warnings []string

	check := func(steps []string, scope string) {
		for _, step := range steps {
			if !strings.ContainsAny(step, " \t") {
				if _, ok := cfg.LookupBlock(step); ok {
					continue
				}
			}
			if _, err := parser.Parse(strings.NewReader(step), scope); err != nil {
				warnings = append(warnings, fmt.Sprintf("%s: step %q: %v", scope, step, err))
			}
		}
	}

	for _, section := range taskfile.AllSections() {
		ps := cfg.Tasks.SectionSteps(section)
		if ps == nil {
			continue
		}
		for _, os := range []platform.OS{platform.Linux, platform.MacOS} {
			if list := ps.ForOS(os); list != nil {
				check(list.Steps, section.Key()+"."+os.String())
			}
		}
	}
	for name, block := range cfg.Blocks {
		check(block.Steps, "block "+name)
	}
	return warnings
}

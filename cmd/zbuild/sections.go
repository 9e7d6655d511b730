// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"zbuild-cli/pkg/platform"
	"zbuild-cli/pkg/taskfile"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [FILE]",
	Short: "List the task file's sections and step counts",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := userCfg.TaskFile
		if len(args) == 1 {
			path = args[0]
		}

		cfg, err := taskfile.Load(path)
		if err != nil {
			return &ExitError{Code: 1, Err: err}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, TitleStyle.Render("Sections")+SubtitleStyle.Render(" (fixed execution order)"))
		for _, section := range taskfile.AllSections() {
			ps := cfg.Tasks.SectionSteps(section)
			if ps == nil {
				fmt.Fprintf(out, "  %-11s %s\n", section, SubtitleStyle.Render("(not defined)"))
				continue
			}
			line := fmt.Sprintf("  %-11s", section)
			for _, os := range platform.All() {
				if list := ps.ForOS(os); list != nil {
					line += fmt.Sprintf(" %s:%d", os, len(list.Steps))
				}
			}
			if section == taskfile.Clean {
				line += " " + WarningStyle.Render("(opt-in)")
			}
			fmt.Fprintln(out, line)
		}

		if len(cfg.Blocks) > 0 {
			fmt.Fprintln(out, TitleStyle.Render("Blocks"))
			for _, name := range sortedBlockNames(cfg) {
				fmt.Fprintf(out, "  %s %s\n", CmdStyle.Render(name),
					SubtitleStyle.Render(fmt.Sprintf("(%d steps)", len(cfg.Blocks[name].Steps))))
			}
		}
		return nil
	},
}

func sortedBlockNames(cfg *taskfile.Config) []string {
	names := make([]string, 0, len(cfg.Blocks))
	for name := range cfg.Blocks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

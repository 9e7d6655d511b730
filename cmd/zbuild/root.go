// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"zbuild-cli/internal/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbosity counts -v occurrences; 0 is info, 1+ is debug.
	verbosity int

	// userCfg holds the loaded user-level settings.
	userCfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "zbuild",
		Short: "A declarative build-lifecycle task runner",
		Long: TitleStyle.Render("zbuild") + SubtitleStyle.Render(" - A declarative build-lifecycle task runner") + `

zbuild reads a YAML task file holding the eight fixed lifecycle sections
(prebuild, build, postbuild, test, predeploy, deploy, postdeploy, clean),
each with per-platform shell command lists, and executes them in order
against the host shell. Environment variables set by one command are
captured and made visible to every later step, and named blocks of steps
can be reused from any section.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a zbuild.yml in your project directory
  2. Define sections and steps under the 'tasks' key
  3. Run them with: zbuild run

` + SubtitleStyle.Render("Examples:") + `
  zbuild run                    Run all sections except clean
  zbuild run --section clean    Run only the clean section
  zbuild run --dry-run          Show the commands without executing
  zbuild validate               Check the task file without running
  zbuild sections               List sections and their step counts
  zbuild docs                   Show the task file reference`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (repeatable)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(docsCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the user-level settings.
func initRootConfig() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		return
	}
	userCfg = cfg
	if cfg.Verbose && verbosity == 0 {
		verbosity = 1
	}
}

// newLogger builds the event logger honoring the -v count.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbosity > 0 {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "zbuild",
		Level:  level,
	})
}

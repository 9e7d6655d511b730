// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zbuild-cli/internal/envstore"
	"zbuild-cli/internal/runner"
	"zbuild-cli/pkg/platform"
	"zbuild-cli/pkg/taskfile"
)

var (
	runCwd             string
	runOS              string
	runSections        []string
	runDryRun          bool
	runEnvVars         []string
	runEnvFile         string
	runContinueOnError bool

	runCmd = &cobra.Command{
		Use:   "run [FILE]",
		Short: "Execute the task file's lifecycle sections",
		Long: `Execute the task file's lifecycle sections in their fixed order.

Without --section, every section except 'clean' runs (and any section the
task file lists under skip_sections). With --section, exactly the named
sections run, still in lifecycle order.

Overriding the target OS with --os forces dry-run mode, since commands
written for another platform's shell cannot run on this host.

Examples:
  zbuild run                         Run zbuild.yml in the current directory
  zbuild run ci/zbuild.yml           Run a specific task file
  zbuild run --section test          Run only the test section
  zbuild run --env RELEASE=1         Pass an extra variable to every command
  zbuild run --os windows            Show what a Windows run would execute`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}
)

func init() {
	runCmd.Flags().StringVar(&runCwd, "cwd", "", "working directory for all commands (default: current directory)")
	runCmd.Flags().StringVar(&runOS, "os", "", "target OS: windows, linux or macos (default: detected; overriding forces dry-run)")
	runCmd.Flags().StringArrayVar(&runSections, "section", nil, "section to run (repeatable; overrides the default clean-skip)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the commands without executing them")
	runCmd.Flags().StringArrayVar(&runEnvVars, "env", nil, "extra KEY=VALUE for child processes (repeatable)")
	runCmd.Flags().StringVar(&runEnvFile, "env-file", "", "extra environment variables from a dotenv file")
	runCmd.Flags().BoolVar(&runContinueOnError, "continue-on-error", false, "record failures and keep going instead of aborting")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	taskFilePath := userCfg.TaskFile
	if len(args) == 1 {
		taskFilePath = args[0]
	}

	detected, err := platform.Detect()
	if err != nil {
		return err
	}
	targetOS := detected
	if runOS != "" {
		targetOS, err = platform.Parse(runOS)
		if err != nil {
			return err
		}
	}

	dryRun := runDryRun
	if targetOS != detected {
		logger.Warn(WarningStyle.Render(fmt.Sprintf(
			"Overriding detected OS '%s' with user-specified OS '%s'. Forcing dry-run mode.",
			detected, targetOS)))
		dryRun = true
	}

	dir := runCwd
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	cfg, err := taskfile.Load(taskFilePath)
	if err != nil {
		return err
	}

	// Best-effort: a failed capture (for instance when targeting another OS)
	// leaves commands with the explicitly configured variables only.
	env := envstore.New()
	if err := env.CaptureAmbient(targetOS, dir); err != nil {
		logger.Debug("ambient environment capture failed", "err", err)
	}

	if cfg.Global != nil {
		env.Apply(cfg.Global.Env, envstore.SourceGlobal)
	}
	if runEnvFile != "" {
		if err := env.LoadEnvFile(runEnvFile, envstore.SourcePassed); err != nil {
			return err
		}
	}

	extraEnv := make(map[string]string, len(runEnvVars))
	for _, assignment := range runEnvVars {
		key, value, err := parseEnvAssignment(assignment)
		if err != nil {
			return err
		}
		extraEnv[key] = value
	}

	opts := runner.Options{
		OS:       targetOS,
		Dir:      dir,
		DryRun:   dryRun,
		ExtraEnv: extraEnv,
	}
	if runContinueOnError {
		opts.Policy = taskfile.CarryForward
	} else if userCfg.ExecutionPolicy != "" {
		if opts.Policy, err = taskfile.ParsePolicy(userCfg.ExecutionPolicy); err != nil {
			return fmt.Errorf("invalid execution_policy in user config: %w", err)
		}
	}
	for _, name := range runSections {
		section, err := taskfile.ParseSection(name)
		if err != nil {
			return err
		}
		opts.Sections = append(opts.Sections, section)
	}

	// fang renders the returned error; printing it here would show it twice.
	if err := runner.New(logger).Run(cmd.Context(), cfg, opts, env); err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("All tasks completed successfully."))
	return nil
}

// parseEnvAssignment splits a KEY=VALUE flag value.
func parseEnvAssignment(s string) (string, string, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return "", "", fmt.Errorf("invalid --env value %q: expected KEY=VALUE", s)
	}
	if key == "" {
		return "", "", fmt.Errorf("invalid --env value %q: key cannot be empty", s)
	}
	return key, value, nil
}

// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"zbuild-cli/internal/envstore"
	"zbuild-cli/internal/executor"
	"zbuild-cli/pkg/taskfile"
)

// Runner executes a parsed task file against a run configuration.
type Runner struct {
	// Logger receives the semantic execution events (section started,
	// command executed, command failed, block entered).
	Logger *log.Logger
}

// runState carries the mutable per-run bookkeeping: the recorded
// carry-forward failures and the in-flight block set guarding against
// self-referential recursion.
type runState struct {
	cfg      *taskfile.Config
	opts     Options
	exec     *executor.Executor
	logger   *log.Logger
	failures []error
	inFlight map[string]struct{}
	// inFlightTrail mirrors inFlight in call order for cycle diagnostics.
	inFlightTrail []string
}

// New creates a Runner that logs events through the given logger.
func New(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run walks the eight sections in their fixed order and executes the steps
// selected by opts against the global environment. The global store is
// updated in place: each section runs against a clone that is merged back
// once the section completes.
//
// The returned error is nil on full success, the first failure when the
// effective policy was fast_fail, or an aggregate of every recorded failure
// under carry_forward.
func (r *Runner) Run(ctx context.Context, cfg *taskfile.Config, opts Options, global *envstore.Store) error {
	st := &runState{
		cfg:      cfg,
		opts:     opts,
		exec:     executor.New(opts.OS, opts.Dir),
		logger:   r.Logger,
		inFlight: make(map[string]struct{}),
	}

	global.Apply(opts.ExtraEnv, envstore.SourcePassed)

	basePolicy := opts.Policy.Resolve(cfg.GlobalPolicy())

	for _, section := range taskfile.AllSections() {
		if !opts.sectionSelected(section, cfg.Global) {
			continue
		}
		steps := cfg.Tasks.SectionSteps(section).ForOS(opts.OS)
		if steps == nil || len(steps.Steps) == 0 {
			continue
		}

		st.logger.Info(fmt.Sprintf("----- [%s] -----", section))

		sectionEnv := global.Clone()
		policy := applyLocalConfig(sectionEnv, steps.Config, basePolicy)

		scope := fmt.Sprintf("section '%s'", section)
		if err := st.runSteps(ctx, steps.Steps, sectionEnv, policy, scope); err != nil {
			return err
		}
		global.Merge(sectionEnv)
	}

	if len(st.failures) > 0 {
		return fmt.Errorf("%d step(s) failed:\n%w", len(st.failures), errors.Join(st.failures...))
	}
	return nil
}

// runSteps dispatches one step list in order against env. Failures of direct
// children are adjudicated with policy: carry_forward records them and keeps
// going, fast_fail returns the first one. Infrastructure errors (the shell
// could not be spawned) are returned regardless of policy.
func (st *runState) runSteps(ctx context.Context, steps []string, env *envstore.Store, policy taskfile.ExecutionPolicy, scope string) error {
	for _, step := range steps {
		var stepErr error

		if st.isBlockReference(step) {
			delta, err := st.resolveBlock(ctx, step, env, policy)
			if err != nil {
				stepErr = err
			} else {
				env.Merge(delta)
			}
		} else {
			st.logger.Info("$ " + step)
			if st.opts.DryRun {
				continue
			}

			res, err := st.exec.Run(ctx, step, env)
			if err != nil {
				// No shell, no output: fatal regardless of policy.
				return err
			}
			env.Merge(res.Delta)
			if !res.ExitCode.IsSuccess() {
				stepErr = &CommandError{Scope: scope, Command: step, ExitCode: res.ExitCode}
			} else if res.Delta.Len() > 0 {
				st.logger.Debug("captured environment delta", "scope", scope, "vars", res.Delta.Len())
			}
		}

		if stepErr != nil {
			if policy == taskfile.CarryForward {
				st.logger.Warn(stepErr.Error())
				st.failures = append(st.failures, stepErr)
				continue
			}
			return stepErr
		}
	}
	return nil
}

// isBlockReference reports whether a step names a block: a single
// whitespace-free, unquoted token that exists in the block table. Anything
// else is executed verbatim as a shell command.
func (st *runState) isBlockReference(step string) bool {
	if strings.ContainsAny(step, " \t") {
		return false
	}
	if strings.HasPrefix(step, `"`) || strings.HasPrefix(step, "'") {
		return false
	}
	_, ok := st.cfg.LookupBlock(step)
	return ok
}

// applyLocalConfig applies a scope's local configuration to its cloned
// environment and returns the scope's effective policy. Local variables are
// tagged SourceLocal; the local policy, when set, overrides the inherited one
// for the steps inside the scope only.
func applyLocalConfig(env *envstore.Store, lc *taskfile.LocalConfig, inherited taskfile.ExecutionPolicy) taskfile.ExecutionPolicy {
	if lc == nil {
		return inherited
	}
	env.Apply(lc.Env, envstore.SourceLocal)
	return lc.ExecutionPolicy.Resolve(inherited)
}

// SPDX-License-Identifier: MPL-2.0

package runner

import (
	"context"

	"zbuild-cli/internal/envstore"
	"zbuild-cli/pkg/taskfile"
)

// resolveBlock looks up a named block, runs its steps against a clone of the
// caller's environment with the block's local configuration applied, and
// returns the resulting environment for the caller to merge. Nested block
// references recurse through the shared step dispatch.
//
// A failure inside the block is adjudicated against the block's own effective
// policy: under carry_forward it is recorded and the block still returns its
// accumulated environment as a success; under fast_fail the error propagates
// to the caller, whose own policy then governs the caller's reaction.
//
// Re-entering a block that is still in flight is reported as a cycle instead
// of recursing until resource exhaustion.
func (st *runState) resolveBlock(ctx context.Context, name string, env *envstore.Store, inherited taskfile.ExecutionPolicy) (*envstore.Store, error) {
	block, ok := st.cfg.LookupBlock(name)
	if !ok {
		return nil, &BlockNotFoundError{Name: name}
	}
	if _, running := st.inFlight[name]; running {
		return nil, &BlockCycleError{Name: name, Trail: append([]string(nil), st.inFlightTrail...)}
	}

	st.logger.Debug("entering block", "block", name)

	st.inFlight[name] = struct{}{}
	st.inFlightTrail = append(st.inFlightTrail, name)
	defer func() {
		delete(st.inFlight, name)
		st.inFlightTrail = st.inFlightTrail[:len(st.inFlightTrail)-1]
	}()

	clone := env.Clone()
	policy := applyLocalConfig(clone, block.Config, inherited)

	if err := st.runSteps(ctx, block.Steps, clone, policy, "block '"+name+"'"); err != nil {
		return nil, err
	}

	st.logger.Debug("block completed", "block", name)
	return clone, nil
}

// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"zbuild-cli/internal/envstore"
	"zbuild-cli/pkg/platform"
)

type (
	// Executor runs shell command lines on a fixed target platform and
	// working directory. Standard streams are passed through so the user
	// sees live output; stdin is not connected.
	Executor struct {
		// OS selects the shell: cmd /C on windows, sh -c elsewhere.
		OS platform.OS
		// Dir is the working directory for every spawned command.
		Dir string
		// Stdout and Stderr default to the process streams when nil.
		Stdout io.Writer
		Stderr io.Writer
	}

	// Result is the outcome of one executed command line. Delta holds the
	// variables the command created or changed, tagged SourceScript; it is
	// populated even when the command exited non-zero, so diagnostic side
	// effects are not lost.
	Result struct {
		ExitCode ExitCode
		Delta    *envstore.Store
	}
)

// winStatusVar holds the user command's errorlevel on Windows while the dump
// runs; it is filtered out of the captured delta.
const winStatusVar = "ZBUILD_EXIT_STATUS"

// New creates an executor for the given platform and working directory.
func New(osID platform.OS, dir string) *Executor {
	return &Executor{OS: osID, Dir: dir}
}

// Run executes one command line under the target shell with the given
// environment. The returned Result is valid whenever the shell could be
// spawned at all; a non-zero exit is reported through Result.ExitCode, not
// through the error. A non-nil error means no command output was possible
// (the shell itself failed to start) and is always fatal to the caller.
func (e *Executor) Run(ctx context.Context, commandLine string, env *envstore.Store) (*Result, error) {
	// The dump path must be absolute: a cd inside the command changes the
	// redirect's base directory, but not where the dump is read back from.
	dumpPath, err := filepath.Abs(filepath.Join(e.Dir, envstore.DumpFileName()))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dump file path: %w", err)
	}

	// The dump builtin is chained unconditionally so it runs even after a
	// failing command, and the command's own exit status is saved first so
	// the dump redirect cannot mask it. On POSIX the chain goes on its own
	// lines, since a trailing '#' comment in the command would swallow
	// anything appended to the same line.
	var cmd *exec.Cmd
	if e.OS == platform.Windows {
		script := commandLine + " & set " + winStatusVar + "=!errorlevel!" +
			" & set > \"" + dumpPath + "\" & exit /b !" + winStatusVar + "!"
		cmd = exec.CommandContext(ctx, "cmd", "/V:ON", "/C", script)
	} else {
		script := commandLine + "\n__zbuild_status=$?\nenv > " + quotePOSIX(dumpPath) +
			"\nexit $__zbuild_status"
		cmd = exec.CommandContext(ctx, "sh", "-c", script)
	}

	childEnv := append(env.Environ(), "TERM=xterm-256color")
	if e.OS == platform.Windows {
		childEnv = append(childEnv, "ANSICON=1")
	}
	if _, ok := env.Lookup("PATH"); !ok {
		// Without a PATH the shell cannot locate its own utilities; this
		// only happens when the ambient capture was skipped or failed.
		if hostPath := os.Getenv("PATH"); hostPath != "" {
			childEnv = append(childEnv, "PATH="+hostPath)
		}
	}
	cmd.Env = childEnv

	if e.Dir != "" {
		cmd.Dir = e.Dir
	}
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()

	result := &Result{Delta: envstore.New()}

	runErr := cmd.Run()
	if runErr != nil {
		exitErr, ok := runErr.(*exec.ExitError)
		if !ok {
			return nil, fmt.Errorf("failed to spawn shell for command %q: %w", commandLine, runErr)
		}
		result.ExitCode = ExitCode(exitErr.ExitCode())
	}

	e.collectDelta(result.Delta, childEnv, dumpPath)
	return result, nil
}

// collectDelta reads the dump file the command left behind, keeps the entries
// that are new or changed relative to the environment the child started with,
// and removes the file. A missing dump (command never reached the builtin) is
// not an error; it simply yields an empty delta.
func (e *Executor) collectDelta(delta *envstore.Store, baseline []string, dumpPath string) {
	content, err := os.ReadFile(dumpPath)
	if err != nil {
		return
	}
	defer os.Remove(dumpPath)

	before := make(map[string]string, len(baseline))
	for _, entry := range baseline {
		if key, value, ok := strings.Cut(entry, "="); ok {
			before[key] = value
		}
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(strings.TrimSpace(line), "\r")
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || key == "" || key == winStatusVar {
			continue
		}
		if prev, exists := before[key]; exists && prev == value {
			continue
		}
		delta.Upsert(key, value, envstore.SourceScript)
	}
}

func (e *Executor) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Executor) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}

// quotePOSIX shell-quotes the dump path for the sh -c command line.
func quotePOSIX(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		return s
	}
	return quoted
}

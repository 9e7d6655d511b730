// SPDX-License-Identifier: MPL-2.0

package envstore

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"zbuild-cli/pkg/platform"
)

// DumpFileName returns the name of the transient file the shell's
// environment-printing builtin writes into. The pid suffix keeps separate
// runner processes from clobbering each other, but two runners sharing a
// working directory can still race on it (documented limitation).
func DumpFileName() string {
	return fmt.Sprintf(".env.vars.zbuild.%d", os.Getpid())
}

// CaptureAmbient spawns the target platform's native shell to print its full
// environment into the transient dump file, loads the result with
// SourceDefault, and removes the file. It fails when the shell cannot be
// spawned or exits non-zero.
func (s *Store) CaptureAmbient(osID platform.OS, dir string) error {
	dump := DumpFileName()

	var cmd *exec.Cmd
	if osID == platform.Windows {
		cmd = exec.Command("cmd", "/C", "set > "+dump)
	} else {
		cmd = exec.Command("sh", "-c", "env > "+dump)
	}
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to capture ambient environment: %w", err)
	}

	dumpPath := dump
	if dir != "" {
		dumpPath = filepath.Join(dir, dump)
	}
	defer os.Remove(dumpPath)

	content, err := os.ReadFile(dumpPath)
	if err != nil {
		return fmt.Errorf("failed to read ambient environment dump: %w", err)
	}
	s.Load(string(content), SourceDefault)
	return nil
}

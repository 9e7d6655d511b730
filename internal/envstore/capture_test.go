// SPDX-License-Identifier: MPL-2.0

package envstore

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"zbuild-cli/pkg/platform"
)

func TestCaptureAmbient(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell test")
	}

	t.Setenv("ZBUILD_CAPTURE_PROBE", "captured")

	dir := t.TempDir()
	s := New()
	if err := s.CaptureAmbient(platform.Linux, dir); err != nil {
		t.Fatalf("CaptureAmbient: %v", err)
	}

	v, ok := s.Lookup("ZBUILD_CAPTURE_PROBE")
	if !ok {
		t.Fatal("probe variable not captured")
	}
	if v.Value != "captured" {
		t.Errorf("probe = %q, want captured", v.Value)
	}
	if v.Source != SourceDefault {
		t.Errorf("probe source = %s, want default", v.Source)
	}

	// The transient dump file must be gone.
	if _, err := os.Stat(filepath.Join(dir, DumpFileName())); !os.IsNotExist(err) {
		t.Errorf("dump file still present (stat err = %v)", err)
	}
}

func TestCaptureAmbientBadShell(t *testing.T) {
	if runtime.GOOS != "windows" {
		// cmd.exe does not exist here, so the spawn must fail.
		s := New()
		if err := s.CaptureAmbient(platform.Windows, t.TempDir()); err == nil {
			t.Error("expected error when the target shell cannot run")
		}
	}
}

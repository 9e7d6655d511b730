// SPDX-License-Identifier: MPL-2.0

package envstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "extra.env")
	content := "# comment line\nPLAIN=value\nQUOTED=\"with spaces\"\nexport EXPORTED=yes\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.LoadEnvFile(path, SourcePassed); err != nil {
		t.Fatalf("LoadEnvFile: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"PLAIN", "value"},
		{"QUOTED", "with spaces"},
		{"EXPORTED", "yes"},
	}
	for _, tt := range tests {
		v, ok := s.Lookup(tt.key)
		if !ok {
			t.Errorf("%s not loaded", tt.key)
			continue
		}
		if v.Value != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, v.Value, tt.want)
		}
		if v.Source != SourcePassed {
			t.Errorf("%s source = %s, want passed", tt.key, v.Source)
		}
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	t.Parallel()

	s := New()
	if err := s.LoadEnvFile(filepath.Join(t.TempDir(), "absent.env"), SourcePassed); err == nil {
		t.Error("expected error for missing env file")
	}
}

func TestLoadEnvFileRespectsPriority(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "low.env")
	if err := os.WriteFile(path, []byte("KEY=from_file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	s.Upsert("KEY", "from_script", SourceScript)
	if err := s.LoadEnvFile(path, SourcePassed); err != nil {
		t.Fatal(err)
	}

	if v, _ := s.Lookup("KEY"); v.Value != "from_script" {
		t.Errorf("KEY = %q, want script-sourced value to survive a passed-source load", v.Value)
	}
}

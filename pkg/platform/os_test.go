// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"runtime"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    OS
		wantErr bool
	}{
		{"windows", Windows, false},
		{"linux", Linux, false},
		{"macos", MacOS, false},
		{"MacOS", MacOS, false},
		{" linux ", Linux, false},
		{"darwin", "", true},
		{"freebsd", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) accepted, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	for _, id := range All() {
		if !id.IsValid() {
			t.Errorf("%s reported invalid", id)
		}
	}
	if OS("darwin").IsValid() {
		t.Error("darwin is not a task-file OS key")
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	id, err := Detect()
	switch runtime.GOOS {
	case "windows", "linux", "darwin":
		if err != nil {
			t.Fatalf("Detect: %v", err)
		}
		if !id.IsValid() {
			t.Errorf("Detect = %s, not a valid OS", id)
		}
	default:
		if err == nil {
			t.Errorf("Detect on %s succeeded with %s, want error", runtime.GOOS, id)
		}
	}
}

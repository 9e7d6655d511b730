// SPDX-License-Identifier: MPL-2.0

package taskfile

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateReservedNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		blockName string
		wantPart  string
	}{
		{"section name", "build", "reserved section name"},
		{"section name clean", "clean", "reserved section name"},
		{"os name", "windows", "reserved operating system name"},
		{"os name macos", "macos", "reserved operating system name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{Blocks: map[string]Block{
				tt.blockName: {Steps: []string{"echo hi"}},
			}}
			err := Validate(cfg)
			if err == nil {
				t.Fatalf("block named %q accepted", tt.blockName)
			}
			if !errors.Is(err, ErrConstraint) {
				t.Errorf("error = %v, want ErrConstraint", err)
			}
			if !strings.Contains(err.Error(), tt.wantPart) {
				t.Errorf("error %q does not mention %q", err, tt.wantPart)
			}
		})
	}
}

func TestValidateEmptySteps(t *testing.T) {
	t.Parallel()

	cfg := &Config{Blocks: map[string]Block{
		"deploy_helpers": {Steps: []string{"echo ok", "   "}},
	}}
	if err := Validate(cfg); !errors.Is(err, ErrConstraint) {
		t.Errorf("blank step accepted: %v", err)
	}

	cfg = &Config{Tasks: Tasks{
		Build: &PlatformSteps{Linux: &StepList{Steps: []string{""}}},
	}}
	if err := Validate(cfg); !errors.Is(err, ErrConstraint) {
		t.Errorf("empty section step accepted: %v", err)
	}
}

func TestValidateBadPolicy(t *testing.T) {
	t.Parallel()

	cfg := &Config{Global: &GlobalConfig{ExecutionPolicy: "sometimes"}}
	if err := Validate(cfg); !errors.Is(err, ErrConstraint) {
		t.Errorf("bad global policy accepted: %v", err)
	}

	cfg = &Config{Blocks: map[string]Block{
		"helper": {Steps: []string{"echo"}, Config: &LocalConfig{ExecutionPolicy: "maybe"}},
	}}
	if err := Validate(cfg); !errors.Is(err, ErrConstraint) {
		t.Errorf("bad local policy accepted: %v", err)
	}
}

func TestValidateSkipSections(t *testing.T) {
	t.Parallel()

	cfg := &Config{Global: &GlobalConfig{SkipSections: []string{"nosuch"}}}
	if err := Validate(cfg); !errors.Is(err, ErrConstraint) {
		t.Errorf("unknown skip_sections entry accepted: %v", err)
	}

	cfg = &Config{Global: &GlobalConfig{SkipSections: []string{"postdeploy", "Test"}}}
	if err := Validate(cfg); err != nil {
		t.Errorf("valid skip_sections rejected: %v", err)
	}
}

func TestValidateBlockCycles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		blocks  map[string]Block
		wantErr bool
	}{
		{
			name:    "self reference",
			blocks:  map[string]Block{"loop": {Steps: []string{"loop"}}},
			wantErr: true,
		},
		{
			name: "mutual reference",
			blocks: map[string]Block{
				"a": {Steps: []string{"b"}},
				"b": {Steps: []string{"a"}},
			},
			wantErr: true,
		},
		{
			name: "diamond is fine",
			blocks: map[string]Block{
				"top":   {Steps: []string{"left", "right"}},
				"left":  {Steps: []string{"base"}},
				"right": {Steps: []string{"base"}},
				"base":  {Steps: []string{"echo base"}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(&Config{Blocks: tt.blocks})
			if tt.wantErr && !errors.Is(err, ErrConstraint) {
				t.Errorf("cycle not rejected: %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("acyclic table rejected: %v", err)
			}
		})
	}
}

func TestValidateBlockNameWithWhitespace(t *testing.T) {
	t.Parallel()

	cfg := &Config{Blocks: map[string]Block{
		"two words": {Steps: []string{"echo"}},
	}}
	if err := Validate(cfg); !errors.Is(err, ErrConstraint) {
		t.Errorf("block name with whitespace accepted: %v", err)
	}
}

// SPDX-License-Identifier: MPL-2.0

package taskfile

import (
	"errors"
	"testing"
)

const sampleTaskFile = `
tasks:
  prebuild:
    linux:
      steps:
        - ./scripts/generate.sh
  build:
    linux:
      steps:
        - make -j4
      config:
        execution_policy: carry_forward
        env:
          BUILD_MODE: release
    windows:
      steps:
        - msbuild /p:Configuration=Release
  clean:
    linux:
      steps:
        - make clean
blocks:
  fetch_deps:
    steps:
      - go mod download
  release:
    config:
      env:
        RELEASE: "1"
    steps:
      - fetch_deps
      - make dist
config:
  execution_policy: fast_fail
  skip_sections: [postdeploy]
  env:
    PROJECT: zbuild
`

func TestParseBytes(t *testing.T) {
	t.Parallel()

	cfg, err := ParseBytes([]byte(sampleTaskFile), "zbuild.yml")
	if err != nil {
		t.Fatalf("ParseBytes: %v", err)
	}

	build := cfg.Tasks.SectionSteps(Build)
	if build == nil {
		t.Fatal("build section missing")
	}
	if build.Linux == nil || len(build.Linux.Steps) != 1 || build.Linux.Steps[0] != "make -j4" {
		t.Errorf("build.linux steps = %+v", build.Linux)
	}
	if build.Linux.Config == nil || build.Linux.Config.ExecutionPolicy != CarryForward {
		t.Errorf("build.linux local policy = %+v, want carry_forward", build.Linux.Config)
	}
	if build.Linux.Config.Env["BUILD_MODE"] != "release" {
		t.Errorf("build.linux local env = %+v", build.Linux.Config.Env)
	}
	if build.Windows == nil || len(build.Windows.Steps) != 1 {
		t.Errorf("build.windows steps = %+v", build.Windows)
	}

	if _, ok := cfg.LookupBlock("fetch_deps"); !ok {
		t.Error("fetch_deps block missing")
	}
	release, ok := cfg.LookupBlock("release")
	if !ok {
		t.Fatal("release block missing")
	}
	if release.Config == nil || release.Config.Env["RELEASE"] != "1" {
		t.Errorf("release block config = %+v", release.Config)
	}

	if cfg.Global == nil {
		t.Fatal("global config missing")
	}
	if cfg.GlobalPolicy() != FastFail {
		t.Errorf("global policy = %q", cfg.GlobalPolicy())
	}
	if len(cfg.Global.SkipSections) != 1 || cfg.Global.SkipSections[0] != "postdeploy" {
		t.Errorf("skip_sections = %v", cfg.Global.SkipSections)
	}
}

func TestParseBytesEmptyDocument(t *testing.T) {
	t.Parallel()

	cfg, err := ParseBytes(nil, "empty.yml")
	if err != nil {
		t.Fatalf("ParseBytes(empty): %v", err)
	}
	if len(cfg.Blocks) != 0 || cfg.Global != nil {
		t.Errorf("empty document produced non-empty config: %+v", cfg)
	}
}

func TestParseBytesUnknownField(t *testing.T) {
	t.Parallel()

	_, err := ParseBytes([]byte("tasks:\n  build:\n    linux:\n      commands: [make]\n"), "bad.yml")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

func TestParseBytesMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseBytes([]byte("tasks: [unclosed"), "bad.yml")
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse", err)
	}
}

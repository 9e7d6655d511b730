// SPDX-License-Identifier: MPL-2.0

package taskfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the task file at path, then validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file at %s: %w", path, err)
	}

	cfg, err := ParseBytes(data, path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseBytes parses task file content and validates the resulting model.
// The path parameter is used for error messages only.
func ParseBytes(data []byte, path string) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			// An empty document is a valid, empty task file.
			cfg = Config{}
		} else {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

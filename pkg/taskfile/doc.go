// SPDX-License-Identifier: MPL-2.0

// Package taskfile defines the task-file model for zbuild: the eight fixed
// build-lifecycle sections, per-platform step lists, reusable named blocks,
// and the global configuration. It parses YAML documents into the model and
// enforces the structural constraints (reserved names, non-empty steps,
// acyclic block references) before anything is executed.
package taskfile

// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the operating system identifiers used by the
// task model and the shell executor, avoiding scattered magic strings for
// the three supported targets.
package platform

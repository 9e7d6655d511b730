// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"fmt"
	"runtime"
)

// OS identifier constants. These are the task-file spelling of the three
// supported targets; note "macos" rather than Go's "darwin".
const (
	Windows OS = "windows"
	Linux   OS = "linux"
	MacOS   OS = "macos"
)

// OS is a task-runner platform identifier.
type OS string

// All returns the supported platforms in declaration order.
func All() []OS {
	return []OS{Windows, Linux, MacOS}
}

// Detect returns the host platform, or an error when the host is not one of
// the three supported targets.
func Detect() (OS, error) {
	switch runtime.GOOS {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	case "darwin":
		return MacOS, nil
	default:
		return "", fmt.Errorf("unsupported host operating system %q", runtime.GOOS)
	}
}

// Parse converts a user-supplied platform name into an OS identifier.
func Parse(name string) (OS, error) {
	switch OS(name) {
	case Windows, Linux, MacOS:
		return OS(name), nil
	default:
		return "", fmt.Errorf("unknown operating system %q (expected windows, linux or macos)", name)
	}
}

// IsValid reports whether the identifier is one of the supported platforms.
func (o OS) IsValid() bool {
	return o == Windows || o == Linux || o == MacOS
}

// String returns the task-file spelling of the identifier.
func (o OS) String() string { return string(o) }

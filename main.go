// SPDX-License-Identifier: MPL-2.0

package main

import cmd "zbuild-cli/cmd/zbuild"

func main() {
	cmd.Execute()
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed taskfile_reference.md
var taskfileReference string

var (
	docsWidth int

	docsCmd = &cobra.Command{
		Use:   "docs",
		Short: "Show the task file format reference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendererOpts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
			if docsWidth > 0 {
				rendererOpts = append(rendererOpts, glamour.WithWordWrap(docsWidth))
			}

			renderer, err := glamour.NewTermRenderer(rendererOpts...)
			if err != nil {
				return fmt.Errorf("failed to create markdown renderer: %w", err)
			}

			rendered, err := renderer.Render(taskfileReference)
			if err != nil {
				return fmt.Errorf("failed to render reference: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
)

func init() {
	docsCmd.Flags().IntVar(&docsWidth, "width", 0, "wrap output at the given column (0 = terminal default)")
}

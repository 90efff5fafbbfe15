package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paper/internal/browse"
	"paper/internal/preview"
)

const defaultDocsWidth = 80

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse themes and component colors interactively",
		Long: "Open the interactive theme browser.\n\n" +
			"  t      next theme\n" +
			"  d      switch between light and dark\n" +
			"  tab    cycle through components\n" +
			"  c      copy the selected color\n" +
			"  s      save the current theme as the default\n" +
			"  q      quit",
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return browse.Run(a.reg,
				browse.WithFormat(a.format),
				browse.WithLogger(a.logger),
			)
		},
	}
}

func newDocsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "docs [name]",
		Short: "Print a markdown reference of a theme's tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			th, err := a.current(name)
			if err != nil {
				return err
			}
			width := a.width
			if width <= 0 {
				width = defaultDocsWidth
			}
			render := preview.MarkdownRenderer(a.format, width)
			fmt.Fprintln(cmd.OutOrStdout(), render(preview.TokenReference(th)))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	perrors "paper/internal/errors"
	"paper/internal/theme"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

func formatScheme(th *theme.Theme) string {
	if th.Dark {
		return "dark"
	}
	return "light"
}

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Long:  "List the stock themes, the community palettes and any themes saved to the catalog. The active theme is marked with *.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved := map[string]bool{}
			if catalog, err := a.existingCatalog(cmd.Context()); err == nil && catalog != nil {
				entries, err := catalog.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, e := range entries {
					saved[e.Name] = true
				}
			}

			current := a.reg.CurrentName()
			var rows [][]string
			for _, name := range a.reg.Names() {
				th, err := a.reg.Get(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == current {
					marker = "*"
				}
				source := "stock"
				if saved[name] {
					source = "saved"
				}
				rows = append(rows, []string{
					marker,
					name,
					fmt.Sprintf("MD%d", th.Version),
					formatScheme(th),
					string(th.Mode),
					source,
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"", "NAME", "VERSION", "SCHEME", "MODE", "SOURCE"}, rows)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a theme's color tokens and elevation levels",
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
			fmt.Fprintln(cmd.OutOrStdout(), a.printer(th).Theme(th))
			return nil
		},
	}
}

func newSaveCmd(a *app) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a custom theme definition to the catalog",
		Long: "Read a theme definition (YAML, JSON or TOML) and save it to the catalog under <name>.\n" +
			"The definition names a base theme plus color, elevation and font overrides.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(from) == "" {
				return perrors.New(perrors.CodeInvalidArgument, "--from is required", nil)
			}
			def, err := theme.LoadFile(from)
			if err != nil {
				return err
			}
			def.Name = args[0]
			th, err := def.Build(a.reg)
			if err != nil {
				return err
			}

			catalog, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			entry, err := catalog.Save(cmd.Context(), th)
			if err != nil {
				return err
			}
			a.logger.Info().Str("theme", entry.Name).Str("id", entry.ID).Msg("saved theme")
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s, MD%d) to %s\n", entry.Name, formatScheme(th), entry.Version, catalog.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "theme definition file")
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved theme from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			if err := catalog.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info().Str("theme", args[0]).Msg("deleted theme")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

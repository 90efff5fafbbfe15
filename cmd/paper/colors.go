package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paper/internal/color"
	"paper/internal/overlay"
	"paper/internal/preview"
	"paper/internal/theme"
)

func newOverlayCmd(a *app) *cobra.Command {
	var (
		elevation int
		surface   string
		tint      string
		ramp      bool
	)
	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Compute the elevation overlay of a surface color",
		Long: "Composite the elevation tint over a surface color. Elevation is clamped to 0-24;\n" +
			"the surface defaults to the active theme's surface token and the tint to white.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			th := a.reg.Current()
			base := th.Color(theme.Surface)
			if surface != "" {
				c, err := color.Parse(surface)
				if err != nil {
					return err
				}
				base = c
			}
			over := color.White
			if tint != "" {
				c, err := color.Parse(tint)
				if err != nil {
					return err
				}
				over = c
			}

			p := preview.NewPrinter(a.format, a.width, base)
			out := cmd.OutOrStdout()
			if ramp {
				fmt.Fprintln(out, p.Ramp(base, over))
				return nil
			}
			clamped := overlay.ClampElevation(elevation)
			fmt.Fprintln(out, p.Swatch(fmt.Sprintf("elevation %d (%.2f%%)", clamped, overlay.Opacity(clamped)*100),
				overlay.OverlayWith(clamped, base, over)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&elevation, "elevation", "e", 1, "elevation in dp (clamped to 0-24)")
	cmd.Flags().StringVar(&surface, "surface", "", "surface color (default: theme surface)")
	cmd.Flags().StringVar(&tint, "tint", "", "overlay tint (default: white)")
	cmd.Flags().BoolVar(&ramp, "ramp", false, "print every elevation from 0 to 24")
	return cmd
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <color> [color]",
		Short: "Report whether a color is dark and its contrast ratio",
		Long: "Report the perceived luminance of a color and whether light content belongs on it.\n" +
			"With a second color, also print the WCAG contrast ratio between the two.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := make([]color.Color, len(args))
			for i, arg := range args {
				c, err := color.Parse(arg)
				if err != nil {
					return err
				}
				colors[i] = c
			}

			p := preview.NewPrinter(a.format, a.width, a.reg.Current().Color(theme.Background))
			out := cmd.OutOrStdout()
			for _, c := range colors {
				scheme := "light"
				if c.IsDark() {
					scheme = "dark"
				}
				fmt.Fprintln(out, p.Swatch(c.String(), c))
				fmt.Fprintf(out, "  luminance %.1f  %s\n", c.Luminance(), scheme)
			}
			if len(colors) == 2 {
				fmt.Fprintf(out, "contrast %.2f:1\n", color.Contrast(p.Flatten(colors[0]), p.Flatten(colors[1])))
			}
			return nil
		},
	}
}

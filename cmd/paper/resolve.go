package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"paper/internal/color"
	perrors "paper/internal/errors"
	"paper/internal/style"
)

type resolveFlags struct {
	mode      string
	variant   string
	disabled  bool
	selected  bool
	focused   bool
	checked   bool
	errored   bool
	expanded  bool
	elevated  bool
	elevation int
	// elevationSet distinguishes an explicit --elevation 0 from the default.
	elevationSet bool
	content      string
	custom       map[string]string
}

func newResolveCmd(a *app) *cobra.Command {
	var f resolveFlags
	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Resolve the paint colors of a component",
		Long: "Resolve the colors a component paints with for the active theme and the given props.\n\n" +
			"Components: " + strings.Join(style.Components(), ", "),
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return style.Components(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f.elevationSet = cmd.Flags().Changed("elevation")
			props, err := f.props()
			if err != nil {
				return err
			}
			th := a.reg.Current()
			res, err := style.Resolve(th, args[0], props)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("component", args[0]).Str("theme", th.Name).Interface("props", props).Msg("resolved")
			fmt.Fprintln(cmd.OutOrStdout(), a.printer(th).Resolved(th, args[0], res))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.mode, "mode", "m", "", "component mode (text, outlined, contained, elevated, contained-tonal, flat)")
	fl.StringVar(&f.variant, "variant", "", "component variant (primary, secondary, tertiary, surface, android, ios)")
	fl.BoolVar(&f.disabled, "disabled", false, "disabled state")
	fl.BoolVar(&f.selected, "selected", false, "selected state")
	fl.BoolVar(&f.focused, "focused", false, "focused state")
	fl.BoolVar(&f.checked, "checked", false, "checked state")
	fl.BoolVar(&f.errored, "error", false, "error state")
	fl.BoolVar(&f.expanded, "expanded", false, "expanded state")
	fl.BoolVar(&f.elevated, "elevated", false, "elevated state")
	fl.IntVarP(&f.elevation, "elevation", "e", 0, "elevation (default: the component's own)")
	fl.StringVar(&f.content, "content", "", "force light or dark content instead of deciding from the background")
	fl.StringToStringVar(&f.custom, "custom", nil, "custom color per role, e.g. --custom background=#ff0000")
	return cmd
}

// props converts the flags into resolver props. Custom colors are parsed in
// role order so the first bad value reported is stable.
func (f resolveFlags) props() (style.Props, error) {
	p := style.Props{
		Mode:      strings.ToLower(strings.TrimSpace(f.mode)),
		Variant:   strings.ToLower(strings.TrimSpace(f.variant)),
		Disabled:  f.disabled,
		Selected:  f.selected,
		Focused:   f.focused,
		Checked:   f.checked,
		Error:     f.errored,
		Expanded:  f.expanded,
		Elevated:  f.elevated,
	}
	if f.elevationSet {
		p.Elevation = style.Elevation(f.elevation)
	}
	switch strings.ToLower(strings.TrimSpace(f.content)) {
	case "":
	case "light":
		light := true
		p.Dark = &light
	case "dark":
		dark := false
		p.Dark = &dark
	default:
		return style.Props{}, perrors.New(perrors.CodeInvalidArgument, fmt.Sprintf("--content must be light or dark, got %q", f.content), nil)
	}

	if len(f.custom) > 0 {
		roles := make([]string, 0, len(f.custom))
		for role := range f.custom {
			roles = append(roles, role)
		}
		sort.Strings(roles)
		p.Custom = make(map[string]color.Color, len(roles))
		for _, role := range roles {
			c, err := color.Parse(f.custom[role])
			if err != nil {
				return style.Props{}, err
			}
			p.Custom[role] = c
		}
	}
	return p, nil
}

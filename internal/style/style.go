// Package style derives the paint colors of individual Material components
// from a theme and the component's props. Every resolver is a pure function
// of its inputs.
package style

import (
	"fmt"
	"sort"

	"paper/internal/color"
	perrors "paper/internal/errors"
	"paper/internal/theme"
)

// Component modes and variants understood by the resolvers.
const (
	ModeText           = "text"
	ModeOutlined       = "outlined"
	ModeContained      = "contained"
	ModeElevated       = "elevated"
	ModeContainedTonal = "contained-tonal"
	ModeFlat           = "flat"

	VariantPrimary   = "primary"
	VariantSecondary = "secondary"
	VariantTertiary  = "tertiary"
	VariantSurface   = "surface"

	VariantAndroid = "android"
	VariantIOS     = "ios"
)

// Props are the local inputs a component passes alongside the theme.
type Props struct {
	Mode      string
	Variant   string
	Disabled  bool
	Selected  bool
	Focused   bool
	Checked   bool
	Error     bool
	Expanded  bool
	Elevated  bool
	// Elevation overrides the component's default elevation when set.
	Elevation *int
	// Dark forces light (true) or dark (false) content instead of deciding
	// from the background.
	Dark *bool
	// Custom holds caller overrides keyed by role, e.g. "background" or "text".
	Custom map[string]color.Color
}

func (p Props) custom(role string) (color.Color, bool) {
	c, ok := p.Custom[role]
	return c, ok
}

// elevationOr returns the requested elevation, or def when none was given.
func (p Props) elevationOr(def int) int {
	if p.Elevation == nil {
		return def
	}
	return *p.Elevation
}

// Elevation is a convenience for building Props.Elevation.
func Elevation(e int) *int {
	return &e
}

func (p Props) isMode(m string) bool {
	return p.Mode == m
}

// Swatch is one named output color.
type Swatch struct {
	Role  string
	Color color.Color
}

// Result is implemented by every resolver's output.
type Result interface {
	Swatches() []Swatch
}

// Resolver adapts a component resolver to the generic registry.
type Resolver func(*theme.Theme, Props) Result

var resolvers = map[string]Resolver{}

func register(name string, r Resolver) {
	resolvers[name] = r
}

// Components lists the registered component names in sorted order.
func Components() []string {
	names := make([]string, 0, len(resolvers))
	for name := range resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve runs the resolver registered under component.
func Resolve(th *theme.Theme, component string, p Props) (Result, error) {
	r, ok := resolvers[component]
	if !ok {
		return nil, perrors.New(perrors.CodeUnknownComponent, fmt.Sprintf("unknown component %q", component), nil)
	}
	if th == nil {
		return nil, perrors.New(perrors.CodeInvalidTheme, "theme is required", nil)
	}
	return r(th, p), nil
}

// ContentColor picks white or black content for a background. dark, when
// set, wins; a transparent background counts as light.
func ContentColor(bg color.Color, dark *bool) color.Color {
	if isDark(dark, bg) {
		return color.White
	}
	return color.Black
}

func isDark(dark *bool, bg color.Color) bool {
	if dark != nil {
		return *dark
	}
	if bg.IsTransparent() {
		return false
	}
	return bg.IsDark()
}

// onThemeBase is white on dark themes and black on light ones; Material 2
// derives its translucent disabled and border colors from it.
func onThemeBase(th *theme.Theme) color.Color {
	if th.Dark {
		return color.White
	}
	return color.Black
}

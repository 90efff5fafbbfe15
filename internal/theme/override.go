package theme

import (
	"paper/internal/color"
	"paper/internal/overlay"
)

// Override describes a partial change to a theme. Nil and empty fields keep
// the base theme's value.
type Override struct {
	Name           string
	Dark           *bool
	Mode           Mode
	Roundness      *int
	AnimationScale *float64
	Colors         Palette
	// Elevation overrides individual Material 3 levels by index.
	Elevation map[int]color.Color
	Fonts     *FontConfig
}

// With returns a copy of t with o applied. t itself is left untouched.
//
// On Material 3 themes, overriding primary or surface re-derives the elevation
// levels, and overriding onSurface re-derives the disabled tokens, unless
// those are overridden too.
func (t *Theme) With(o Override) *Theme {
	out := t.clone()
	if o.Name != "" {
		out.Name = o.Name
	}
	if o.Dark != nil {
		out.Dark = *o.Dark
	}
	if o.Mode != "" {
		out.Mode = o.Mode
	}
	if o.Roundness != nil {
		out.Roundness = *o.Roundness
	}
	if o.AnimationScale != nil {
		out.AnimationScale = *o.AnimationScale
	}
	for tok, c := range o.Colors {
		out.Colors[tok] = c
	}

	if out.IsV3() {
		_, primary := o.Colors[Primary]
		_, surface := o.Colors[Surface]
		if primary || surface {
			out.deriveElevation()
		}
		if onSurface, ok := o.Colors[OnSurface]; ok {
			if _, set := o.Colors[SurfaceDisabled]; !set {
				out.Colors[SurfaceDisabled] = onSurface.Alpha(0.12)
			}
			if _, set := o.Colors[OnSurfaceDisabled]; !set {
				out.Colors[OnSurfaceDisabled] = onSurface.Alpha(0.38)
			}
		}
	}
	for level, c := range o.Elevation {
		out.Elevation[overlay.Level(level)] = c
	}

	if o.Fonts != nil {
		cfg := *o.Fonts
		if cfg.Version == 0 {
			cfg.Version = out.Version
		}
		out.Fonts = ConfigureFonts(cfg)
	}
	return out
}

// NavigationTheme is the reduced palette navigation containers use.
type NavigationTheme struct {
	Dark         bool
	Primary      color.Color
	Background   color.Color
	Card         color.Color
	Text         color.Color
	Border       color.Color
	Notification color.Color
}

// AdaptNavigationTheme maps t onto the navigation palette.
func AdaptNavigationTheme(t *Theme) NavigationTheme {
	nav := NavigationTheme{
		Dark:       t.Dark,
		Primary:    t.Color(Primary),
		Background: t.Color(Background),
	}
	if t.IsV3() {
		nav.Card = t.Level(2)
		nav.Text = t.Color(OnSurface)
		nav.Border = t.Color(Outline)
		nav.Notification = t.Color(Error)
		return nav
	}
	nav.Card = t.Color(Surface)
	if t.Dark && t.IsAdaptive() {
		nav.Card = overlay.Overlay(4, t.Color(Surface))
	}
	nav.Text = t.Color(Text)
	nav.Border = t.Color(Text).Alpha(0.12)
	nav.Notification = t.Color(Notification)
	return nav
}

package style

import (
	"paper/internal/color"
	"paper/internal/overlay"
	"paper/internal/theme"
)

// BottomNavigationColors is the paint of a bottom navigation bar.
type BottomNavigationColors struct {
	Background   color.Color
	ActiveTint   color.Color
	InactiveTint color.Color
	Label        color.Color
	Indicator    color.Color
	Ripple       color.Color
}

func (c BottomNavigationColors) Swatches() []Swatch {
	return []Swatch{
		{"background", c.Background},
		{"activeTint", c.ActiveTint},
		{"inactiveTint", c.InactiveTint},
		{"label", c.Label},
		{"indicator", c.Indicator},
		{"ripple", c.Ripple},
	}
}

// BottomNavigation resolves the bar for the tab described by p; Focused marks
// the active tab. Custom roles: background, active, inactive.
func BottomNavigation(th *theme.Theme, p Props) BottomNavigationColors {
	bg, ok := p.custom("background")
	if !ok {
		switch {
		case th.IsV3():
			bg = th.Level(2)
		case th.Dark && th.IsAdaptive():
			bg = overlay.Overlay(p.elevationOr(DefaultAppbarElevation), th.Color(theme.Surface))
		default:
			bg = th.Color(theme.Primary)
		}
	}
	fallback := ContentColor(bg, p.Dark)

	customActive, hasActive := p.custom("active")
	customInactive, hasInactive := p.custom("inactive")

	active := fallback
	switch {
	case hasActive:
		active = customActive
	case th.IsV3():
		active = th.Color(theme.OnSecondaryContainer)
	}

	inactive := fallback.Alpha(0.5)
	switch {
	case hasInactive:
		inactive = customInactive
	case th.IsV3():
		inactive = th.Color(theme.OnSurfaceVariant)
	}

	// Each side's label follows its own custom tint; only an uncustomized
	// side falls back to the Material 3 label colors.
	label := inactive
	if th.IsV3() && !hasInactive {
		label = th.Color(theme.OnSurfaceVariant)
	}
	if p.Focused {
		label = active
		if th.IsV3() && !hasActive {
			label = th.Color(theme.OnSurface)
		}
	}

	indicator := color.Transparent
	if th.IsV3() {
		indicator = th.Color(theme.SecondaryContainer)
	}

	return BottomNavigationColors{
		Background:   bg,
		ActiveTint:   active,
		InactiveTint: inactive,
		Label:        label,
		Indicator:    indicator,
		Ripple:       fallback.Alpha(0.12),
	}
}

func init() {
	register("bottom-navigation", func(th *theme.Theme, p Props) Result { return BottomNavigation(th, p) })
}
